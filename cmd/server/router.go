package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tdw-edu/questions-api/internal/api"
	apiMiddleware "github.com/tdw-edu/questions-api/internal/api/middleware"
	"github.com/tdw-edu/questions-api/internal/api/shared"
	"github.com/tdw-edu/questions-api/internal/catalog"
)

// idPattern restricts path ids to digits; anything else is an unknown path.
const idPattern = "/{id:[0-9]+}"

var (
	collectionMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	itemMethods       = []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions}
)

// setupRouter creates the router with every route and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewMetrics(app.registry, metricsNamespace).Handler)

	// Set before any subrouter is mounted so they inherit both.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, catalog.MsgPathNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, catalog.MsgMethodNotAllowed)
	})

	authn := apiMiddleware.NewAuthMiddleware(app.jwtService).Authenticate
	authHandler := api.NewAuthHandler(app.loginService, app.logger)
	linkHandler := api.NewCategoryLinkHandler(app.categoryService, app.logger)

	r.Route(app.config.Server.APIPrefix, func(r chi.Router) {
		login := r.With(apiMiddleware.CORS(http.MethodPost, http.MethodOptions))
		login.Options("/login", api.Options("POST"))
		login.Post("/login", authHandler.Login)

		mountResource(r, "/users", api.NewUserHandler(app.userService, app.logger), authn)
		mountResource(r, "/questions", api.NewQuestionHandler(app.questionService, app.logger), authn)
		mountResource(r, "/categories", api.NewCategoryHandler(app.categoryService, app.logger), authn)
		mountResource(r, "/solutions", api.NewSolutionHandler(app.solutionService, app.logger), authn)
		mountResource(r, "/rationales", api.NewRationaleHandler(app.rationaleService, app.logger), authn)

		link := r.With(apiMiddleware.CORS(http.MethodPut, http.MethodDelete), authn)
		link.Put("/categories"+idPattern+"/questions/{questionId:[0-9]+}", linkHandler.Link)
		link.Delete("/categories"+idPattern+"/questions/{questionId:[0-9]+}", linkHandler.Unlink)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}

// resourceRoutes is the handler surface mountResource needs.
type resourceRoutes interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// mountResource registers the collection and item routes of one entity kind.
// OPTIONS is answered without authentication.
func mountResource(r chi.Router, path string, h resourceRoutes, authn func(http.Handler) http.Handler) {
	collection := r.With(apiMiddleware.CORS(collectionMethods...))
	collection.Options(path, api.Options("GET, POST"))
	collection.With(authn).Get(path, h.List)
	collection.With(authn).Post(path, h.Create)

	item := r.With(apiMiddleware.CORS(itemMethods...))
	itemPath := path + idPattern
	item.Options(itemPath, api.Options("GET, PUT, DELETE"))
	item.With(authn).Get(itemPath, h.Get)
	item.With(authn).Put(itemPath, h.Update)
	item.With(authn).Delete(itemPath, h.Delete)
}
