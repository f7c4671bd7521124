// Package screens implements the client screens on top of the gateway
// client and the local services. Every screen returns a view and a Result:
// remote failures become Result.Message and are never raised to the caller.
package screens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	clientapi "github.com/iudanet/umkmhub/internal/client/api"
	"github.com/iudanet/umkmhub/internal/client/favorites"
	"github.com/iudanet/umkmhub/internal/client/profile"
	"github.com/iudanet/umkmhub/internal/client/reviews"
	"github.com/iudanet/umkmhub/internal/client/session"
	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/pkg/api"
)

// ImageBucket is the gateway bucket for business logos and product photos
const ImageBucket = "umkm-images"

//go:generate moq -out records_mock.go . Records
//go:generate moq -out accounts_mock.go . Accounts

// Records is the record part of the gateway client
type Records interface {
	Select(ctx context.Context, table string, q models.Query) (*models.RecordPage, error)
	Get(ctx context.Context, table, id string) (models.Record, error)
	Insert(ctx context.Context, table string, rec models.Record) (models.Record, error)
	Update(ctx context.Context, table, id string, patch models.Record) error
	Delete(ctx context.Context, table, id string) error
}

// Accounts is the account part of the auth service
type Accounts interface {
	SignUp(ctx context.Context, fullName, email, password, confirm string) (*api.SignUpResponse, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	ResetPassword(ctx context.Context, email string) error
}

// Confirmer asks the user to confirm a destructive action
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Result is the outcome of a screen action
type Result struct {
	Err      error  // причина неудачи, nil при успехе
	Message  string // текст для пользователя
	Navigate string // путь, на который нужно перейти, пустой если остаемся
	NotFound bool   // запрошенная запись не найдена
}

// Failed reports whether the action failed
func (r Result) Failed() bool {
	return r.Err != nil
}

// Image is a picture selected for upload in a form
type Image struct {
	Body        io.Reader
	Name        string
	ContentType string
}

// Deps are the collaborators of the screens
type Deps struct {
	Records   Records
	Objects   profile.ObjectStorage
	Accounts  Accounts
	Session   *session.Controller
	Favorites *favorites.Service
	Reviews   *reviews.Service
	Profile   *profile.Service
	Store     storage.Store
}

// Screens builds screen views and performs screen actions
type Screens struct {
	deps   Deps
	now    func() time.Time
	suffix func() string
}

// New creates the screens
func New(deps Deps) *Screens {
	return &Screens{
		deps: deps,
		now:  time.Now,
		suffix: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
		},
	}
}

func (s *Screens) currentSession() *models.Session {
	if s.deps.Session == nil {
		return nil
	}
	return s.deps.Session.Current()
}

// failure builds a failed result with the gateway message appended to prefix
func failure(prefix string, err error) Result {
	return Result{Err: err, Message: prefix + errorText(err)}
}

// errorText returns the message shown to the user for err
func errorText(err error) string {
	var apiErr *clientapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func isNotFound(err error) bool {
	return clientapi.StatusOf(err) == http.StatusNotFound
}

// decode converts a gateway record into a typed model
func decode[T any](rec models.Record) (T, error) {
	var v T
	data, err := json.Marshal(rec)
	if err != nil {
		return v, fmt.Errorf("failed to encode record: %w", err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to decode record: %w", err)
	}
	return v, nil
}

func decodeAll[T any](rows []models.Record) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, rec := range rows {
		v, err := decode[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// uploadImage stores img under dir in ImageBucket and returns its public URL.
// Without a new image the current URL is kept.
func (s *Screens) uploadImage(ctx context.Context, dir string, img *Image, current string) (string, error) {
	if img == nil {
		return current, nil
	}

	ext := strings.TrimPrefix(filepath.Ext(img.Name), ".")
	if ext == "" {
		ext = "bin"
	}
	path := fmt.Sprintf("%s/%d_%s.%s", dir, s.now().UnixMilli(), s.suffix(), ext)

	if err := s.deps.Objects.Upload(ctx, ImageBucket, path, img.Body, img.ContentType, false); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.deps.Objects.PublicURL(ImageBucket, path), nil
}

// totalPages returns the number of pages needed for count rows
func totalPages(count, perPage int) int {
	if count <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
