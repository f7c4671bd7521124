package objects

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readObject(t *testing.T, obj *Object) string {
	t.Helper()
	defer func() {
		_ = obj.Body.Close()
	}()
	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	return string(data)
}

func TestFSStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	err = s.Put(ctx, "umkm-images", "products/1_a.png", strings.NewReader("png-bytes"), "image/png", false)
	require.NoError(t, err)

	obj, err := s.Get(ctx, "umkm-images", "products/1_a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(9), obj.Size)
	assert.False(t, obj.ModTime.IsZero())
	assert.Equal(t, "png-bytes", readObject(t, obj))
}

func TestFSStore_Put_NoUpsert(t *testing.T) {
	ctx := context.Background()
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "umkm-images", "a.jpg", strings.NewReader("first"), "image/jpeg", false))

	err = s.Put(ctx, "umkm-images", "a.jpg", strings.NewReader("second"), "image/jpeg", false)
	assert.ErrorIs(t, err, ErrObjectExists)

	obj, err := s.Get(ctx, "umkm-images", "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "first", readObject(t, obj))
}

func TestFSStore_Put_Upsert(t *testing.T) {
	ctx := context.Background()
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "profile_pics", "u1/avatar", strings.NewReader("old"), "image/jpeg", true))
	require.NoError(t, s.Put(ctx, "profile_pics", "u1/avatar", strings.NewReader("new"), "image/webp", true))

	obj, err := s.Get(ctx, "profile_pics", "u1/avatar")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", obj.ContentType)
	assert.Equal(t, "new", readObject(t, obj))
}

func TestFSStore_DefaultContentType(t *testing.T) {
	ctx := context.Background()
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "umkm-images", "blob", strings.NewReader("x"), "", false))

	obj, err := s.Get(ctx, "umkm-images", "blob")
	require.NoError(t, err)
	assert.Equal(t, DefaultContentType, obj.ContentType)
	_ = obj.Body.Close()
}

func TestFSStore_Get_Errors(t *testing.T) {
	ctx := context.Background()
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "umkm-images", "products/a.png", strings.NewReader("x"), "image/png", false))

	_, err = s.Get(ctx, "umkm-images", "missing.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	// Каталог не является объектом
	_, err = s.Get(ctx, "umkm-images", "products")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = s.Get(ctx, "umkm-images", "../meta/x")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestFSStore_Put_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	err = s.Put(ctx, "umkm-images", "a.png", strings.NewReader("x"), "image/png", false)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Get(context.Background(), "umkm-images", "a.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
