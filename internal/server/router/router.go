// Package router собирает HTTP маршруты шлюза на chi.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/umkmhub/internal/server/handlers"
	"github.com/iudanet/umkmhub/internal/server/jwt"
	"github.com/iudanet/umkmhub/internal/server/middleware"
)

// APIPrefix префикс всех маршрутов API
const APIPrefix = "/api/v1"

// Deps содержит зависимости маршрутизатора
type Deps struct {
	Logger      *slog.Logger
	JWT         *jwt.Service
	Auth        *handlers.AuthHandler
	Records     *handlers.RecordsHandler
	Objects     *handlers.ObjectsHandler
	Health      *handlers.HealthHandler
	Metrics     *middleware.Metrics     // nil отключает /metrics
	RateLimiter *middleware.RateLimiter // nil отключает ограничение частоты
}

// New создает http.Handler со всеми маршрутами шлюза
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RecoveryMiddleware(d.Logger))
	r.Use(middleware.LoggingWithSkip(d.Logger, []string{"/health", "/ready", "/metrics"}))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", d.Health.Health)
	r.Get("/ready", d.Health.Ready)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	requireAuth := middleware.AuthMiddleware(d.Logger, d.JWT)

	r.Route(APIPrefix, func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware())
		}

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", d.Auth.SignUp)
			r.Post("/token", d.Auth.SignIn)
			r.Post("/refresh", d.Auth.Refresh)
			r.Post("/recover", d.Auth.Recover)
			r.Post("/reset", d.Auth.ResetPassword)

			r.With(requireAuth).Post("/logout", d.Auth.Logout)
			r.With(requireAuth).Get("/user", d.Auth.User)
		})

		r.Route("/records/{table}", func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/", d.Records.Select)
			r.Post("/", d.Records.Insert)
			r.Get("/{id}", d.Records.Get)
			r.Patch("/{id}", d.Records.Update)
			r.Delete("/{id}", d.Records.Delete)
		})

		r.Route("/storage", func(r chi.Router) {
			r.Get("/public/{bucket}/*", d.Objects.Public)
			r.With(requireAuth).Put("/{bucket}/*", d.Objects.Upload)
		})
	})

	return r
}
