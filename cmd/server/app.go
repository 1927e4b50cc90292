package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/tdw-edu/questions-api/internal/config"
	"github.com/tdw-edu/questions-api/internal/platform/sqlstore"
	"github.com/tdw-edu/questions-api/internal/service"
	"github.com/tdw-edu/questions-api/internal/service/auth"
)

// metricsNamespace prefixes every exported Prometheus metric.
const metricsNamespace = "questions_api"

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	stores   *sqlstore.Stores
	registry *prometheus.Registry

	jwtService auth.JWTService
	passwords  *auth.Bcrypt

	userService      service.UserService
	questionService  service.QuestionService
	categoryService  service.CategoryService
	solutionService  service.SolutionService
	rationaleService service.RationaleService
	loginService     service.LoginService
}

// newApplication wires stores, services and the metrics registry over an
// open, migrated database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	dialect, err := sqlstore.NewDialect(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		stores:    sqlstore.New(db, dialect, logger),
		registry:  prometheus.NewRegistry(),
		passwords: auth.NewBcrypt(cfg.Auth.BCryptCost),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Driver),
	)

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	s := app.stores
	app.userService = service.NewUserService(s.Users, app.passwords, logger)
	app.questionService = service.NewQuestionService(s.Questions, s.Users, logger)
	app.categoryService = service.NewCategoryService(s.Categories, s.Questions, logger)
	app.solutionService = service.NewSolutionService(s.Solutions, s.Questions, logger)
	app.rationaleService = service.NewRationaleService(s.Rationales, s.Solutions, logger)
	app.loginService = service.NewLoginService(s.Users, app.passwords, app.jwtService, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
