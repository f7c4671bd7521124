// Package reviews stores product reviews locally, newest first.
package reviews

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/models"
)

// Fallback ratings shown when a product has no reviews
const (
	ListFallbackRating   = 4.8
	DetailFallbackRating = 0
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// isoLayout is the millisecond UTC layout of review dates
const isoLayout = "2006-01-02T15:04:05.000Z"

// ErrEmptyReview is returned when the review text is blank
var ErrEmptyReview = errors.New("review text cannot be empty")

// AuthorSource resolves the name and photo put on a new review
type AuthorSource interface {
	Author(ctx context.Context) (name string, photo *string)
}

// Service manages per-product review lists
type Service struct {
	store  storage.Store
	author AuthorSource
	now    func() time.Time
	mu     sync.Mutex
}

// NewService creates a review service
func NewService(store storage.Store, author AuthorSource) *Service {
	return &Service{
		store:  store,
		author: author,
		now:    time.Now,
	}
}

// List returns the reviews of a product, most recent first
func (s *Service) List(ctx context.Context, productID string) []models.ReviewEntry {
	return storage.ReadJSON(ctx, s.store, storage.ReviewsKey(productID), []models.ReviewEntry{})
}

// Add prepends a review to the product's list.
// Blank text returns ErrEmptyReview and leaves the list untouched.
func (s *Service) Add(ctx context.Context, productID, text string, rating int) (models.ReviewEntry, error) {
	if strings.TrimSpace(text) == "" {
		return models.ReviewEntry{}, ErrEmptyReview
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx, productID)
	now := s.now()

	// id должен оставаться уникальным даже при двух отзывах за одну миллисекунду
	id := now.UnixMilli()
	if len(list) > 0 && list[0].ID >= id {
		id = list[0].ID + 1
	}

	name, photo := s.author.Author(ctx)
	entry := models.ReviewEntry{
		ID:     id,
		Name:   name,
		Photo:  photo,
		Text:   text,
		Rating: rating,
		Date:   now.UTC().Format(isoLayout),
	}

	updated := append([]models.ReviewEntry{entry}, list...)
	if err := storage.WriteJSON(ctx, s.store, storage.ReviewsKey(productID), updated); err != nil {
		return models.ReviewEntry{}, err
	}

	return entry, nil
}

// Average returns the mean rating of a product rounded to one decimal,
// or fallback when the product has no reviews
func (s *Service) Average(ctx context.Context, productID string, fallback float64) float64 {
	return Average(s.List(ctx, productID), fallback)
}

// Average computes the rounded mean rating of list
func Average(list []models.ReviewEntry, fallback float64) float64 {
	if len(list) == 0 {
		return fallback
	}

	sum := 0
	for _, r := range list {
		sum += r.Rating
	}

	mean := float64(sum) / float64(len(list))
	return math.Round(mean*10) / 10
}

// ClampRating bounds user input to the allowed range
func ClampRating(rating int) int {
	return min(max(rating, MinRating), MaxRating)
}
