package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/handlers"
	"github.com/iudanet/umkmhub/internal/server/jwt"
	"github.com/iudanet/umkmhub/internal/server/middleware"
	"github.com/iudanet/umkmhub/internal/server/objects"
	"github.com/iudanet/umkmhub/internal/server/storage/sqlite"
	"github.com/iudanet/umkmhub/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// captureMailer keeps the last reset token
type captureMailer struct {
	token string
}

func (m *captureMailer) SendPasswordReset(_ context.Context, _, token string, _ time.Time) error {
	m.token = token
	return nil
}

type gateway struct {
	handler http.Handler
	mailer  *captureMailer
}

func newGateway(t *testing.T) *gateway {
	t.Helper()
	logger := setupTestLogger()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	objs, err := objects.NewFSStore(t.TempDir())
	require.NoError(t, err)

	tokens := jwt.NewService("router-test-secret-0123456789abcdef", 15*time.Minute)
	mailer := &captureMailer{}

	limiter := middleware.NewRateLimiter(1000, 1000, time.Minute, logger)
	t.Cleanup(limiter.Stop)

	h := New(Deps{
		Logger: logger,
		JWT:    tokens,
		Auth: handlers.NewAuthHandler(logger, store, store, store, tokens, mailer, handlers.AuthConfig{
			RefreshTTL: time.Hour,
			ResetTTL:   time.Hour,
		}),
		Records:     handlers.NewRecordsHandler(logger, store),
		Objects:     handlers.NewObjectsHandler(logger, objs, 1<<20, ""),
		Health:      handlers.NewHealthHandler(logger, store, "test"),
		Metrics:     middleware.NewMetrics(prometheus.NewRegistry()),
		RateLimiter: limiter,
	})

	return &gateway{handler: h, mailer: mailer}
}

func (g *gateway) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	g.handler.ServeHTTP(w, req)
	return w
}

func (g *gateway) signIn(t *testing.T, email, password string) api.TokenResponse {
	t.Helper()

	w := g.do(t, http.MethodPost, "/api/v1/auth/signup", "", api.SignUpRequest{Email: email, Password: password, FullName: "Tester"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = g.do(t, http.MethodPost, "/api/v1/auth/token", "", api.SignInRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokens api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&tokens))
	return tokens
}

func TestRouter_Service(t *testing.T) {
	g := newGateway(t)

	assert.Equal(t, http.StatusOK, g.do(t, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, g.do(t, http.MethodGet, "/ready", "", nil).Code)

	w := g.do(t, http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	w = g.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "umkmhub_http_requests_total")
}

func TestRouter_AuthFlow(t *testing.T) {
	g := newGateway(t)
	tokens := g.signIn(t, "budi@example.com", "rahasia")

	w := g.do(t, http.MethodGet, "/api/v1/auth/user", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user api.UserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&user))
	assert.Equal(t, "budi@example.com", user.Email)
	assert.Equal(t, "Tester", user.FullName)

	assert.Equal(t, http.StatusUnauthorized, g.do(t, http.MethodGet, "/api/v1/auth/user", "", nil).Code)

	w = g.do(t, http.MethodPost, "/api/v1/auth/refresh", tokens.RefreshToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rotated api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rotated))
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// Старый refresh token погашен
	assert.Equal(t, http.StatusUnauthorized, g.do(t, http.MethodPost, "/api/v1/auth/refresh", tokens.RefreshToken, nil).Code)

	assert.Equal(t, http.StatusNoContent, g.do(t, http.MethodPost, "/api/v1/auth/logout", rotated.AccessToken, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, g.do(t, http.MethodPost, "/api/v1/auth/refresh", rotated.RefreshToken, nil).Code)
}

func TestRouter_PasswordReset(t *testing.T) {
	g := newGateway(t)
	g.signIn(t, "siti@example.com", "lama123")

	w := g.do(t, http.MethodPost, "/api/v1/auth/recover", "", api.RecoverRequest{Email: "siti@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, g.mailer.token)

	w = g.do(t, http.MethodPost, "/api/v1/auth/reset", "", api.ResetPasswordRequest{Token: g.mailer.token, Password: "baru1234"})
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, http.StatusUnauthorized,
		g.do(t, http.MethodPost, "/api/v1/auth/token", "", api.SignInRequest{Email: "siti@example.com", Password: "lama123"}).Code)
	assert.Equal(t, http.StatusOK,
		g.do(t, http.MethodPost, "/api/v1/auth/token", "", api.SignInRequest{Email: "siti@example.com", Password: "baru1234"}).Code)
}

func TestRouter_Records(t *testing.T) {
	g := newGateway(t)
	owner := g.signIn(t, "budi@example.com", "rahasia")
	other := g.signIn(t, "siti@example.com", "rahasia")

	assert.Equal(t, http.StatusUnauthorized, g.do(t, http.MethodGet, "/api/v1/records/umkm", "", nil).Code)

	w := g.do(t, http.MethodPost, "/api/v1/records/umkm", owner.AccessToken,
		`{"name":"Warung Bu Sri","category":"Makanan","latitude":-6.97,"longitude":110.42}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var business models.Record
	require.NoError(t, json.NewDecoder(w.Body).Decode(&business))
	businessID := business.ID()
	require.NotEmpty(t, businessID)

	for _, name := range []string{"Kopi Susu", "Kopi Hitam", "Teh Manis"} {
		body := map[string]any{"name": name, "price": 10000, "category": "Minuman", "umkm_id": businessID}
		w = g.do(t, http.MethodPost, "/api/v1/records/products", owner.AccessToken, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = g.do(t, http.MethodGet, "/api/v1/records/products?name=ilike.kopi&order=name.asc&limit=1&count=exact", other.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page api.SelectResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Kopi Hitam", page.Rows[0].String("name"))
	require.NotNil(t, page.Count)
	assert.Equal(t, 2, *page.Count)

	w = g.do(t, http.MethodGet, "/api/v1/records/umkm/"+businessID, other.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	path := "/api/v1/records/umkm/" + businessID
	assert.Equal(t, http.StatusForbidden, g.do(t, http.MethodPatch, path, other.AccessToken, `{"name":"Diambil"}`).Code)
	assert.Equal(t, http.StatusForbidden, g.do(t, http.MethodDelete, path, other.AccessToken, nil).Code)
	assert.Equal(t, http.StatusBadRequest, g.do(t, http.MethodPatch, path, owner.AccessToken, `{"owner_id":"x"}`).Code)
	assert.Equal(t, http.StatusNoContent, g.do(t, http.MethodPatch, path, owner.AccessToken, `{"name":"Warung Sri"}`).Code)

	assert.Equal(t, http.StatusNoContent, g.do(t, http.MethodDelete, path, owner.AccessToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, g.do(t, http.MethodGet, path, owner.AccessToken, nil).Code)

	assert.Equal(t, http.StatusNotFound, g.do(t, http.MethodGet, "/api/v1/records/users", owner.AccessToken, nil).Code)
}

func TestRouter_Storage(t *testing.T) {
	g := newGateway(t)
	tokens := g.signIn(t, "budi@example.com", "rahasia")

	put := func(token string, upsert bool, body string) int {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/storage/umkm-images/products/1_a.png", strings.NewReader(body))
		req.Header.Set("Content-Type", "image/png")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if upsert {
			req.Header.Set(api.HeaderUpsert, "true")
		}
		w := httptest.NewRecorder()
		g.handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, put("", false, "x"))
	assert.Equal(t, http.StatusOK, put(tokens.AccessToken, false, "first"))
	assert.Equal(t, http.StatusConflict, put(tokens.AccessToken, false, "second"))
	assert.Equal(t, http.StatusOK, put(tokens.AccessToken, true, "third"))

	// Публичная раздача не требует токена
	w := g.do(t, http.MethodGet, "/api/v1/storage/public/umkm-images/products/1_a.png", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "third", w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}
