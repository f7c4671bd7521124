package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/client/storage/memory"
	"github.com/iudanet/umkmhub/internal/models"
)

type fixedAuthor struct {
	photo *string
	name  string
}

func (a fixedAuthor) Author(ctx context.Context) (string, *string) {
	return a.name, a.photo
}

func newTestService(t *testing.T, now time.Time) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	svc := NewService(store, fixedAuthor{name: "Budi"})
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestAdd_PrependsEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	first, err := svc.Add(ctx, "7", "Enak sekali", 5)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), first.ID)
	assert.Equal(t, "Budi", first.Name)
	assert.Nil(t, first.Photo)
	assert.Equal(t, "2026-03-01T10:00:00.000Z", first.Date)

	second, err := svc.Add(ctx, "7", "Lumayan", 3)
	require.NoError(t, err)

	list := svc.List(ctx, "7")
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0])
	assert.Equal(t, first, list[1])
	// та же миллисекунда, id все равно уникален
	assert.Greater(t, list[0].ID, list[1].ID)
}

func TestAdd_BlankTextIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, time.Now())

	existing := `[{"id":1,"name":"Siti","photo":null,"text":"Mantap","rating":4,"date":"2026-01-01T00:00:00Z"}]`
	require.NoError(t, store.Set(ctx, storage.ReviewsKey("7"), existing))

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Add(ctx, "7", text, 5)
		assert.ErrorIs(t, err, ErrEmptyReview)
	}

	raw, _, err := store.Get(ctx, storage.ReviewsKey("7"))
	require.NoError(t, err)
	assert.Equal(t, existing, raw)
}

func TestAdd_KeepsListsPerProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Add(ctx, "1", "Bagus", 4)
	require.NoError(t, err)

	assert.Len(t, svc.List(ctx, "1"), 1)
	assert.Empty(t, svc.List(ctx, "2"))
}

func TestAverage(t *testing.T) {
	reviews := func(ratings ...int) []models.ReviewEntry {
		list := make([]models.ReviewEntry, 0, len(ratings))
		for i, r := range ratings {
			list = append(list, models.ReviewEntry{ID: int64(i), Rating: r})
		}
		return list
	}

	tests := []struct {
		name     string
		list     []models.ReviewEntry
		fallback float64
		want     float64
	}{
		{name: "no reviews, list fallback", list: nil, fallback: ListFallbackRating, want: 4.8},
		{name: "no reviews, detail fallback", list: nil, fallback: DetailFallbackRating, want: 0},
		{name: "mean of 5, 4, 4", list: reviews(5, 4, 4), fallback: ListFallbackRating, want: 4.3},
		{name: "single review", list: reviews(2), fallback: ListFallbackRating, want: 2},
		{name: "rounds half up", list: reviews(5, 5, 5, 4, 4, 4, 4, 4), fallback: 0, want: 4.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Average(tt.list, tt.fallback), 1e-9)
		})
	}
}

func TestService_AverageCorruptList(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, time.Now())
	require.NoError(t, store.Set(ctx, storage.ReviewsKey("5"), "[{broken"))

	assert.InDelta(t, ListFallbackRating, svc.Average(ctx, "5", ListFallbackRating), 1e-9)
	assert.InDelta(t, 0, svc.Average(ctx, "5", DetailFallbackRating), 1e-9)
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 1, ClampRating(0))
	assert.Equal(t, 1, ClampRating(-3))
	assert.Equal(t, 3, ClampRating(3))
	assert.Equal(t, 5, ClampRating(9))
}
