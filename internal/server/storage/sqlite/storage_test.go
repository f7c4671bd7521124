package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	userID := uuid.New().String()
	user := &models.User{
		ID:           userID,
		Email:        "user_" + userID[:8] + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	return userID
}

func TestNew_FileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "umkmhub.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))

	userID := createTestUser(t, ctx, s)
	require.NoError(t, s.Close())

	// Повторное открытие не применяет миграции заново и сохраняет данные
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	user, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestDialect_Paginate(t *testing.T) {
	tests := []struct {
		name          string
		want          string
		limit, offset int
	}{
		{name: "none", want: ""},
		{name: "limit", limit: 5, want: "LIMIT 5"},
		{name: "limit and offset", limit: 5, offset: 10, want: "LIMIT 5 OFFSET 10"},
		{name: "offset only", offset: 10, want: "LIMIT -1 OFFSET 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dialect{}.Paginate(tt.limit, tt.offset))
		})
	}
}
