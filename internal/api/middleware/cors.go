package middleware

import (
	"net/http"
	"strings"
)

// CORS sets permissive cross-origin headers on every response. Allowed
// methods lists the methods of the route family the middleware wraps.
func CORS(methods ...string) func(http.Handler) http.Handler {
	allowed := strings.Join(methods, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", "*")
			h.Set("Access-Control-Expose-Headers", "X-Token")
			if allowed != "" {
				h.Set("Access-Control-Allow-Methods", allowed)
			}
			next.ServeHTTP(w, r)
		})
	}
}
