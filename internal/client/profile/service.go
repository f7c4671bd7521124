package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/models"
)

// PhotoBucket is the gateway bucket holding profile photos
const PhotoBucket = "profile_pics"

// MaxPhotoSize is the largest accepted profile photo
const MaxPhotoSize = 5 << 20

var (
	// ErrPhotoTooLarge is returned before any upload when the photo exceeds MaxPhotoSize
	ErrPhotoTooLarge = errors.New("photo must not exceed 5 MB")

	// ErrNotAuthenticated is returned when an operation needs a session
	ErrNotAuthenticated = errors.New("not authenticated")
)

//go:generate moq -out objects_mock.go . ObjectStorage

// ObjectStorage uploads files to the gateway
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, upsert bool) error
	PublicURL(bucket, path string) string
}

// Photo is a file selected for upload
type Photo struct {
	Body        io.Reader
	Name        string
	ContentType string
	Size        int64
}

// Service reads and writes the local profile
type Service struct {
	store    storage.Store
	objects  ObjectStorage
	defaults Defaults
	now      func() time.Time
}

// NewService creates a profile service
func NewService(store storage.Store, objects ObjectStorage) *Service {
	return &Service{
		store:    store,
		objects:  objects,
		defaults: DefaultProfile,
		now:      time.Now,
	}
}

func (s *Service) local(ctx context.Context) *models.UserProfile {
	return storage.ReadJSON[*models.UserProfile](ctx, s.store, storage.KeyUserProfile, nil)
}

// Load resolves the profile for the given session, which may be nil
func (s *Service) Load(ctx context.Context, sess *models.Session) Resolved {
	return Resolve(s.local(ctx), sess, s.defaults)
}

// Save overwrites the local profile record. It never calls the gateway.
func (s *Service) Save(ctx context.Context, name, bio string, photo *string) error {
	return storage.WriteJSON(ctx, s.store, storage.KeyUserProfile, models.UserProfile{
		Name:  name,
		Bio:   bio,
		Photo: photo,
	})
}

// Seed stores the name and email entered at sign-up
func (s *Service) Seed(ctx context.Context, name, email string) error {
	return storage.WriteJSON(ctx, s.store, storage.KeyUserProfile, models.UserProfile{
		Name:  name,
		Email: email,
	})
}

// UploadPhoto uploads a new profile photo and stores its public URL.
// The size limit is checked before any gateway call. On failure the
// stored profile keeps its previous photo.
func (s *Service) UploadPhoto(ctx context.Context, sess *models.Session, photo Photo) (Resolved, error) {
	if photo.Size > MaxPhotoSize {
		return Resolved{}, ErrPhotoTooLarge
	}
	if sess == nil {
		return Resolved{}, ErrNotAuthenticated
	}

	path := fmt.Sprintf("%s-%d-%s", sess.User.ID, s.now().UnixMilli(), photo.Name)
	if err := s.objects.Upload(ctx, PhotoBucket, path, photo.Body, photo.ContentType, true); err != nil {
		return Resolved{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	url := s.objects.PublicURL(PhotoBucket, path)
	current := s.Load(ctx, sess)
	if err := s.Save(ctx, current.Name, current.Bio, &url); err != nil {
		return Resolved{}, err
	}

	return s.Load(ctx, sess), nil
}

// Author returns the name and photo put on reviews written from this device
func (s *Service) Author(ctx context.Context) (string, *string) {
	name := s.defaults.Name
	var photo *string

	if p := s.local(ctx); p != nil {
		if p.Name != "" {
			name = p.Name
		}
		if p.Photo != nil && *p.Photo != "" {
			photo = p.Photo
		}
	}

	return name, photo
}
