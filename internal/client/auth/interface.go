package auth

import (
	"context"

	"github.com/iudanet/umkmhub/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the part of the remote gateway client used for authentication.
// *api.Client from internal/client/api implements it.
type Gateway interface {
	// SignUp регистрирует новый аккаунт
	SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error)

	// SignIn выполняет вход по email и паролю
	SignIn(ctx context.Context, req api.SignInRequest) (*api.TokenResponse, error)

	// Refresh обменивает refresh token на новую пару токенов
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)

	// Logout отзывает сессию на сервере
	Logout(ctx context.Context, accessToken string) error

	// RecoverPassword отправляет письмо для сброса пароля
	RecoverPassword(ctx context.Context, email string) error
}
