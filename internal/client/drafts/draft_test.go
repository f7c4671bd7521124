package drafts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/client/storage/memory"
	"github.com/iudanet/umkmhub/internal/models"
)

func TestDraft_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	d := New[models.ProductForm](store, storage.KeyProductDraft)

	form := models.ProductForm{
		Name:        "Kopi",
		Price:       "15000",
		Category:    "Minuman",
		Description: "Kopi robusta",
		ImageURL:    "https://cdn/ignored.jpg",
	}
	require.NoError(t, d.Save(ctx, form))

	raw, ok, err := store.Get(ctx, storage.KeyProductDraft)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "image_url")

	got, restored := d.Restore(ctx, models.ProductForm{})
	assert.True(t, restored)
	form.ImageURL = ""
	assert.Equal(t, form, got)
}

func TestDraft_RestoreMergesOverBlank(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, storage.KeyBusinessDraft, `{"name":"Warung"}`))

	d := New[models.BusinessForm](store, storage.KeyBusinessDraft)
	got, restored := d.Restore(ctx, models.BusinessForm{Category: "Makanan"})

	assert.True(t, restored)
	assert.Equal(t, "Warung", got.Name)
	assert.Equal(t, "Makanan", got.Category)
}

func TestDraft_RestoreCorrupt(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	blank := models.ProductForm{Category: "Makanan"}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed json", raw: `{"name":`},
		{name: "empty object", raw: `{}`},
		{name: "wrong type", raw: `{"name":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, storage.KeyProductDraft, tt.raw))
			got, restored := New[models.ProductForm](store, storage.KeyProductDraft).Restore(ctx, blank)
			assert.False(t, restored)
			assert.Equal(t, blank, got)
		})
	}
}

func TestDraft_Clear(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	d := New[models.ProductForm](store, storage.KeyProductDraft)

	require.NoError(t, d.Save(ctx, models.ProductForm{Name: "x"}))
	require.NoError(t, d.Clear(ctx))

	_, ok, err := store.Get(ctx, storage.KeyProductDraft)
	require.NoError(t, err)
	assert.False(t, ok)
}
