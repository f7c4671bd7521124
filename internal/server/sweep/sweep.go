// Package sweep периодически удаляет просроченные refresh и reset токены.
package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/umkmhub/internal/server/storage"
)

// Sweeper удаляет просроченные токены по таймеру
type Sweeper struct {
	tokens   storage.TokenStorage
	resets   storage.ResetStorage
	logger   *slog.Logger
	now      func() time.Time
	interval time.Duration
}

// New создает Sweeper
func New(tokens storage.TokenStorage, resets storage.ResetStorage, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		tokens:   tokens,
		resets:   resets,
		logger:   logger,
		now:      time.Now,
		interval: interval,
	}
}

// Run sweeps once immediately and then every interval until ctx is done
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sweep deletes tokens expired by now. Errors are logged, not returned.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.now()

	tokens, err := s.tokens.DeleteExpiredTokens(ctx, now)
	if err != nil {
		s.logger.Error("Failed to delete expired refresh tokens", "error", err)
	}

	resets, err := s.resets.DeleteExpiredResets(ctx, now)
	if err != nil {
		s.logger.Error("Failed to delete expired reset tokens", "error", err)
	}

	if tokens > 0 || resets > 0 {
		s.logger.Info("Expired tokens removed", "refresh_tokens", tokens, "reset_tokens", resets)
	}
}
