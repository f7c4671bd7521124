package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/umkmhub/pkg/api"
)

// writeError отправляет JSON ошибку в формате шлюза
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
