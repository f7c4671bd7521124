// Package mail доставляет пользователю ссылки сброса пароля.
package mail

import (
	"context"
	"log/slog"
	"time"
)

// Mailer отправляет письма пользователям
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string, expiresAt time.Time) error
}

// LogMailer пишет письмо в лог вместо отправки
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer создает LogMailer
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendPasswordReset logs the reset token for the given address
func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string, expiresAt time.Time) error {
	m.logger.InfoContext(ctx, "Password reset requested",
		"email", email,
		"token", token,
		"expires_at", expiresAt.UTC().Format(time.RFC3339),
	)
	return nil
}
