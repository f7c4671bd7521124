package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/umkmhub/pkg/api"
)

// SignUp регистрирует нового пользователя
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
	var resp api.SignUpResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/signup", "", req, &resp); err != nil {
		return nil, fmt.Errorf("sign up request failed: %w", err)
	}
	return &resp, nil
}

// SignIn выполняет аутентификацию по email и паролю
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/token", "", req, &resp); err != nil {
		return nil, fmt.Errorf("sign in request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout завершает сессию на шлюзе
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// User возвращает владельца access token
func (c *Client) User(ctx context.Context, accessToken string) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/auth/user", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("user request failed: %w", err)
	}
	return &resp, nil
}

// RecoverPassword запрашивает письмо для сброса пароля
func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/recover", "", api.RecoverRequest{Email: email}, nil); err != nil {
		return fmt.Errorf("recover request failed: %w", err)
	}
	return nil
}

// ResetPassword устанавливает новый пароль по токену из письма
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	req := api.ResetPasswordRequest{Token: token, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/reset", "", req, nil); err != nil {
		return fmt.Errorf("reset password request failed: %w", err)
	}
	return nil
}
