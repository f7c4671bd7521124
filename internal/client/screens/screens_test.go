package screens

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/umkmhub/internal/client/api"
	"github.com/iudanet/umkmhub/internal/client/auth"
	"github.com/iudanet/umkmhub/internal/client/favorites"
	"github.com/iudanet/umkmhub/internal/client/profile"
	"github.com/iudanet/umkmhub/internal/client/reviews"
	"github.com/iudanet/umkmhub/internal/client/session"
	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/client/storage/memory"
	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/validation"
	"github.com/iudanet/umkmhub/pkg/api"
)

// fixture собирает экраны поверх in-memory хранилища и моков шлюза
type fixture struct {
	screens  *Screens
	store    *memory.Store
	records  *RecordsMock
	objects  *profile.ObjectStorageMock
	accounts *AccountsMock
	session  *session.Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:    memory.New(),
		records:  &RecordsMock{},
		objects:  &profile.ObjectStorageMock{},
		accounts: &AccountsMock{},
		session:  session.NewController(),
	}

	prof := profile.NewService(f.store, f.objects)
	f.screens = New(Deps{
		Records:   f.records,
		Objects:   f.objects,
		Accounts:  f.accounts,
		Session:   f.session,
		Favorites: favorites.NewService(f.store),
		Reviews:   reviews.NewService(f.store, prof),
		Profile:   prof,
		Store:     f.store,
	})
	f.screens.now = func() time.Time { return time.UnixMilli(1700000000000) }
	f.screens.suffix = func() string { return "abc123xyz0" }

	return f
}

func (f *fixture) signIn() {
	f.session.Set(&models.Session{
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        models.SessionUser{ID: "user-1", Email: "budi@example.com"},
		AccessToken: "token",
	})
}

func notFound() error {
	return &clientapi.Error{Status: http.StatusNotFound, Code: "not_found", Message: "record not found"}
}

func confirm(answer bool, prompts *[]string) Confirmer {
	return ConfirmFunc(func(prompt string) bool {
		if prompts != nil {
			*prompts = append(*prompts, prompt)
		}
		return answer
	})
}

func TestLoginRedirect(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, Result{}, f.screens.LoginRedirect())

	f.signIn()
	assert.Equal(t, "/", f.screens.LoginRedirect().Navigate)
}

func TestSignIn(t *testing.T) {
	tests := []struct {
		err         error
		name        string
		wantMessage string
		wantNav     string
	}{
		{
			name:        "success",
			wantMessage: "Login Berhasil! Mengarahkan...",
			wantNav:     "/",
		},
		{
			name:        "gateway message",
			err:         fmt.Errorf("sign in failed: %w", &clientapi.Error{Status: 400, Message: "Invalid login credentials"}),
			wantMessage: "Login Gagal: Invalid login credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.accounts.SignInFunc = func(ctx context.Context, email, password string) (*models.Session, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &models.Session{}, nil
			}

			res := f.screens.SignIn(context.Background(), "budi@example.com", "rahasia123")
			assert.Equal(t, tt.wantMessage, res.Message)
			assert.Equal(t, tt.wantNav, res.Navigate)
			assert.Equal(t, tt.err != nil, res.Failed())
		})
	}
}

func TestSignUp_PasswordMismatch(t *testing.T) {
	f := newFixture(t)
	f.accounts.SignUpFunc = func(ctx context.Context, fullName, email, password, confirm string) (*api.SignUpResponse, error) {
		return nil, validation.ErrPasswordMismatch
	}

	res := f.screens.SignUp(context.Background(), "Budi", "budi@example.com", "a", "b")
	assert.Equal(t, "Password dan Confirm Password tidak sama!", res.Message)

	_, ok, err := f.store.Get(context.Background(), storage.KeyUserProfile)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignUp_SeedsProfile(t *testing.T) {
	f := newFixture(t)
	f.accounts.SignUpFunc = func(ctx context.Context, fullName, email, password, confirm string) (*api.SignUpResponse, error) {
		return &api.SignUpResponse{UserID: "user-1"}, nil
	}
	ctx := context.Background()

	res := f.screens.SignUp(ctx, " Budi ", "budi@example.com", "rahasia123", "rahasia123")
	assert.False(t, res.Failed())
	assert.Equal(t, "Pendaftaran berhasil! Silakan cek email untuk konfirmasi.", res.Message)

	raw, ok, err := f.store.Get(ctx, storage.KeyUserProfile)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Budi","bio":"","photo":null,"email":"budi@example.com"}`, raw)
}

func TestResetPassword(t *testing.T) {
	f := newFixture(t)
	f.accounts.ResetPasswordFunc = func(ctx context.Context, email string) error {
		if email == "" {
			return auth.ErrEmailRequired
		}
		return nil
	}
	ctx := context.Background()

	assert.Equal(t, "Masukkan email untuk reset password!", f.screens.ResetPassword(ctx, "").Message)
	assert.Equal(t, "Email reset password telah dikirim!", f.screens.ResetPassword(ctx, "budi@example.com").Message)
}

func TestSignOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accounts.SignOutFunc = func(ctx context.Context) error { return nil }
	assert.Equal(t, "/login", f.screens.SignOut(ctx).Navigate)

	f.accounts.SignOutFunc = func(ctx context.Context) error { return errors.New("network down") }
	res := f.screens.SignOut(ctx)
	assert.True(t, res.Failed())
	assert.Equal(t, "Logout Gagal: network down", res.Message)
}

func TestHome(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.records.SelectFunc = func(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
		switch table {
		case models.TableProducts:
			assert.Equal(t, HomeProducts, q.Limit)
			return &models.RecordPage{Rows: []models.Record{
				{"id": "p1", "name": "Kopi Susu", "price": 12000.0},
				{"id": "p2", "name": "Batik Tulis", "price": 350000.0},
			}}, nil
		case models.TableBusinesses:
			assert.Equal(t, HomeBusinesses, q.Limit)
			return &models.RecordPage{Rows: []models.Record{{"id": "u1", "name": "Warung Bu Sri"}}}, nil
		}
		return nil, fmt.Errorf("unexpected table %s", table)
	}

	_, err := f.screens.deps.Reviews.Add(ctx, "p2", "Bagus", 3)
	require.NoError(t, err)

	view, res := f.screens.Home(ctx)
	require.False(t, res.Failed())
	assert.Equal(t, profile.DefaultProfile.Name, view.Greeting)
	require.Len(t, view.Products, 2)
	assert.InDelta(t, reviews.ListFallbackRating, view.Products[0].Rating, 1e-9)
	assert.InDelta(t, 3.0, view.Products[1].Rating, 1e-9)
	require.Len(t, view.Businesses, 1)
	assert.Equal(t, "Warung Bu Sri", view.Businesses[0].Name)
	assert.Equal(t, []string{"Makanan", "Minuman", "Fashion", "Kerajinan", "Jasa"}, view.Categories)
}

func TestHome_GatewayError(t *testing.T) {
	f := newFixture(t)
	f.records.SelectFunc = func(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
		return nil, &clientapi.Error{Status: 500, Message: "database unavailable"}
	}

	_, res := f.screens.Home(context.Background())
	assert.True(t, res.Failed())
	assert.Equal(t, "Gagal memuat produk: database unavailable", res.Message)
}

func TestLocation_SkipsMissingCoordinates(t *testing.T) {
	f := newFixture(t)
	f.records.SelectFunc = func(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
		assert.Equal(t, models.TableBusinesses, table)
		assert.Equal(t, []string{"id", "name", "latitude", "longitude", "category"}, q.Columns)
		return &models.RecordPage{Rows: []models.Record{
			{"id": "u1", "name": "Warung", "latitude": -6.99, "longitude": 110.42, "category": "Makanan"},
			{"id": "u2", "name": "Tanpa Lokasi", "latitude": nil, "longitude": nil},
		}}, nil
	}

	view, res := f.screens.Location(context.Background())
	require.False(t, res.Failed())
	assert.Equal(t, models.DefaultCenter, view.Center)
	require.Len(t, view.Locations, 1)
	assert.Equal(t, "u1", view.Locations[0].ID)
	assert.InDelta(t, 110.42, view.Locations[0].Longitude, 1e-9)
}
