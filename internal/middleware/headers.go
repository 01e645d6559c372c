// AngelaMos | 2026
// headers.go

package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/carterperez-dev/quotevault/internal/config"
)

// SecurityHeaders sets the baseline hardening headers on every response.
// HSTS is only meaningful behind TLS, so it is limited to production.
func SecurityHeaders(isProduction bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if isProduction {
				h.Set(
					"Strict-Transport-Security",
					"max-age=31536000; includeSubDomains",
				)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
