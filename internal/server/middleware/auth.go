package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/umkmhub/internal/server/handlers"
	"github.com/iudanet/umkmhub/internal/server/jwt"
)

// AuthMiddleware создает middleware для проверки JWT access token
func AuthMiddleware(logger *slog.Logger, tokens *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Ожидаем формат: "Bearer <token>"
			tokenString, ok := handlers.BearerToken(r)
			if !ok {
				logger.Warn("Missing or malformed Authorization header", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.ValidateAccessToken(tokenString)
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				writeError(w, http.StatusUnauthorized, "invalid or expired access token")
				return
			}

			// Добавляем данные из токена в контекст
			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Email)

			logger.Debug("User authenticated", "user_id", claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
