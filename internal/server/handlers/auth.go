package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/umkmhub/internal/crypto"
	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/jwt"
	"github.com/iudanet/umkmhub/internal/server/mail"
	"github.com/iudanet/umkmhub/internal/server/storage"
	"github.com/iudanet/umkmhub/internal/validation"
	"github.com/iudanet/umkmhub/pkg/api"
)

// AuthConfig содержит время жизни токенов, которые выпускает AuthHandler
type AuthConfig struct {
	RefreshTTL time.Duration
	ResetTTL   time.Duration
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
	resetStorage storage.ResetStorage
	jwt          *jwt.Service
	mailer       mail.Mailer
	now          func() time.Time
	cfg          AuthConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(
	logger *slog.Logger,
	userStorage storage.UserStorage,
	tokenStorage storage.TokenStorage,
	resetStorage storage.ResetStorage,
	jwtService *jwt.Service,
	mailer mail.Mailer,
	cfg AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		responder:    responder{logger: logger},
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
		resetStorage: resetStorage,
		jwt:          jwtService,
		mailer:       mailer,
		now:          time.Now,
		cfg:          cfg,
	}
}

// normalizeEmail приводит email к виду, в котором он хранится
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp обрабатывает POST /api/v1/auth/signup
// Регистрация нового пользователя
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := normalizeEmail(req.Email)
	if err := validation.ValidateEmail(email); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		CreatedAt:    h.now(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", email))
			h.sendError(w, "email already registered", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully", slog.String("user_id", user.ID))

	h.sendJSON(w, api.SignUpResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
	}, http.StatusCreated)
}

// SignIn обрабатывает POST /api/v1/auth/token
// Аутентификация по email и паролю
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sign in request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		h.sendError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found")
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		if !errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		}
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("user_id", user.ID))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	resp, err := h.issueTokens(r, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Не критичная ошибка, логируем но не прерываем
	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, h.now()); err != nil {
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully", slog.String("user_id", user.ID))

	h.sendJSON(w, resp, http.StatusOK)
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Обмен refresh token на новую пару токенов; старый токен погашается
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken, ok := BearerToken(r)
	if !ok {
		h.sendError(w, "refresh token is required", http.StatusUnauthorized)
		return
	}

	tokenHash := crypto.HashToken(refreshToken)

	stored, err := h.tokenStorage.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			h.sendError(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Погашаем токен до выдачи новой пары: повторное использование невозможно
	if err := h.tokenStorage.DeleteRefreshToken(ctx, tokenHash); err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.sendError(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !h.now().Before(stored.ExpiresAt) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("user_id", stored.UserID))
		h.sendError(w, "refresh token expired", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp, err := h.issueTokens(r, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.String("user_id", user.ID))

	h.sendJSON(w, resp, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Удаляет все refresh tokens пользователя; вызывается за AuthMiddleware
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	deleted, err := h.tokenStorage.DeleteUserTokens(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete user tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged out successfully",
		slog.String("user_id", userID),
		slog.Int("tokens_deleted", deleted))

	w.WriteHeader(http.StatusNoContent)
}

// User обрабатывает GET /api/v1/auth/user
func (h *AuthHandler) User(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, userResponse(user), http.StatusOK)
}

// Recover обрабатывает POST /api/v1/auth/recover
// Ответ не зависит от того, существует ли пользователь
func (h *AuthHandler) Recover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RecoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := normalizeEmail(req.Email)
	if err := validation.ValidateEmail(email); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	accepted := api.MessageResponse{Message: "If the address is registered, a reset link has been sent"}

	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.InfoContext(ctx, "password reset for unknown email")
			h.sendJSON(w, accepted, http.StatusOK)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := crypto.GenerateToken()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate reset token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := h.now()
	reset := &models.PasswordReset{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: crypto.HashToken(token),
		ExpiresAt: now.Add(h.cfg.ResetTTL),
		CreatedAt: now,
	}

	if err := h.resetStorage.SavePasswordReset(ctx, reset); err != nil {
		h.logger.ErrorContext(ctx, "failed to save password reset", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.mailer.SendPasswordReset(ctx, user.Email, token, reset.ExpiresAt); err != nil {
		h.logger.ErrorContext(ctx, "failed to send password reset", slog.Any("error", err))
	}

	h.sendJSON(w, accepted, http.StatusOK)
}

// ResetPassword обрабатывает POST /api/v1/auth/reset
// Токен одноразовый; после смены пароля все сессии пользователя завершаются
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		h.sendError(w, "token is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reset, err := h.resetStorage.GetPasswordReset(ctx, crypto.HashToken(req.Token))
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.sendError(w, "invalid or expired token", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get password reset", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := h.now()
	if reset.UsedAt != nil || !now.Before(reset.ExpiresAt) {
		h.logger.WarnContext(ctx, "stale reset token", slog.String("user_id", reset.UserID))
		h.sendError(w, "invalid or expired token", http.StatusBadRequest)
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Токен погашается первым: при гонке двух запросов пройдет только один
	if err := h.resetStorage.MarkPasswordResetUsed(ctx, reset.ID, now); err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.sendError(w, "invalid or expired token", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to mark reset used", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.userStorage.UpdatePassword(ctx, reset.UserID, hash); err != nil {
		h.logger.ErrorContext(ctx, "failed to update password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := h.tokenStorage.DeleteUserTokens(ctx, reset.UserID); err != nil {
		h.logger.WarnContext(ctx, "failed to revoke sessions after reset", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "password reset completed", slog.String("user_id", reset.UserID))

	w.WriteHeader(http.StatusNoContent)
}

// issueTokens выпускает access token и сохраняет новый refresh token
func (h *AuthHandler) issueTokens(r *http.Request, user *models.User) (*api.TokenResponse, error) {
	accessToken, expiresIn, err := h.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := crypto.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := h.now()
	token := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: crypto.HashToken(refreshToken),
		ExpiresAt: now.Add(h.cfg.RefreshTTL),
		CreatedAt: now,
	}

	if err := h.tokenStorage.SaveRefreshToken(r.Context(), token); err != nil {
		return nil, err
	}

	return &api.TokenResponse{
		User:         userResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

func userResponse(user *models.User) api.UserResponse {
	return api.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
