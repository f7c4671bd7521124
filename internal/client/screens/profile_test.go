package screens

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/client/profile"
	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/models"
)

func TestProfile_GuestAndSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view := f.screens.Profile(ctx)
	assert.True(t, view.Profile.Guest)
	assert.Equal(t, profile.GuestEmailLabel, view.Profile.Email)
	assert.Equal(t, profile.DefaultProfile.Name, view.Profile.Name)

	f.signIn()
	view = f.screens.Profile(ctx)
	assert.False(t, view.Profile.Guest)
	assert.Equal(t, "budi@example.com", view.Profile.Email)
	assert.Equal(t, "budi", view.Profile.Name)
}

func TestSaveProfile_KeepsPhoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, storage.KeyUserProfile, `{"name":"Budi","bio":"","photo":"https://gw/p.png"}`))

	res := f.screens.SaveProfile(ctx, "Budi S.", "Suka batik")
	require.False(t, res.Failed())

	view := f.screens.Profile(ctx)
	assert.Equal(t, "Budi S.", view.Profile.Name)
	assert.Equal(t, "Suka batik", view.Profile.Bio)
	require.NotNil(t, view.Profile.Photo)
	assert.Equal(t, "https://gw/p.png", *view.Profile.Photo)
}

func TestUploadPhoto_TooLarge(t *testing.T) {
	f := newFixture(t)
	f.signIn()

	_, res := f.screens.UploadPhoto(context.Background(), profile.Photo{
		Body: bytes.NewReader(nil),
		Name: "big.png",
		Size: 6 << 20,
	})
	assert.True(t, res.Failed())
	assert.Equal(t, "Ukuran foto maksimal 5MB.", res.Message)
	assert.Empty(t, f.objects.UploadCalls())
}

func TestUploadPhoto_Success(t *testing.T) {
	f := newFixture(t)
	f.signIn()
	f.objects.UploadFunc = func(ctx context.Context, bucket, path string, body io.Reader, contentType string, upsert bool) error {
		assert.Equal(t, profile.PhotoBucket, bucket)
		assert.True(t, upsert)
		return nil
	}
	f.objects.PublicURLFunc = func(bucket, path string) string { return "https://gw/" + path }

	resolved, res := f.screens.UploadPhoto(context.Background(), profile.Photo{
		Body: bytes.NewReader([]byte("png")),
		Name: "me.png",
		Size: 3,
	})
	require.False(t, res.Failed(), res.Message)
	require.NotNil(t, resolved.Photo)
	assert.Contains(t, *resolved.Photo, "user-1-")
}

func TestRemoveFavorite_Partition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, res := f.screens.ToggleProductFavorite(ctx, models.Product{ID: "42", Name: "Batik"})
	require.False(t, res.Failed())
	_, res = f.screens.ToggleBusinessFavorite(ctx, models.Business{ID: "42", Name: "Toko Batik"})
	require.False(t, res.Failed())
	_, res = f.screens.ToggleBusinessFavorite(ctx, models.Business{ID: "7", Name: "Warung"})
	require.False(t, res.Failed())

	p, res := f.screens.RemoveFavorite(ctx, "42", models.FavoriteProduct)
	require.False(t, res.Failed())
	assert.Empty(t, p.Products)
	require.Len(t, p.Businesses, 2)
	assert.Equal(t, "42", p.Businesses[0].ID)
	assert.Equal(t, "7", p.Businesses[1].ID)

	assert.Equal(t, p, f.screens.Profile(ctx).Favorites)
}
