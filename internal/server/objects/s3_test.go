package objects

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is a minimal in-memory S3API for testing
type fakeS3 struct {
	objects map[string]fakeObject
	puts    []*s3.PutObjectInput
	putErr  error
}

type fakeObject struct {
	body        string
	contentType string
}

type apiError struct{ code string }

func (e apiError) Error() string     { return "api error " + e.code }
func (e apiError) ErrorCode() string { return e.code }

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}

	key := aws.ToString(in.Bucket) + ":" + aws.ToString(in.Key)
	if _, exists := f.objects[key]; exists && aws.ToString(in.IfNoneMatch) == "*" {
		return nil, apiError{code: "PreconditionFailed"}
	}

	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = fakeObject{body: string(data), contentType: aws.ToString(in.ContentType)}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	obj, ok := f.objects[aws.ToString(in.Bucket)+":"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	modified := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(obj.body)),
		ContentType:   aws.String(obj.contentType),
		ContentLength: aws.Int64(int64(len(obj.body))),
		LastModified:  &modified,
	}, nil
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]fakeObject)}
}

func TestS3Store_PutGet(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	s := NewS3StoreWithClient(client, "umkmhub")

	require.NoError(t, s.Put(ctx, "umkm-images", "products/a.png", strings.NewReader("png"), "image/png", false))

	require.Len(t, client.puts, 1)
	in := client.puts[0]
	assert.Equal(t, "umkmhub", aws.ToString(in.Bucket))
	assert.Equal(t, "umkm-images/products/a.png", aws.ToString(in.Key))
	assert.Equal(t, "*", aws.ToString(in.IfNoneMatch))
	assert.Equal(t, int64(3), aws.ToInt64(in.ContentLength))

	obj, err := s.Get(ctx, "umkm-images", "products/a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(3), obj.Size)
	assert.Equal(t, "png", readObject(t, obj))
}

func TestS3Store_Put_Conflict(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	s := NewS3StoreWithClient(client, "umkmhub")

	require.NoError(t, s.Put(ctx, "umkm-images", "a.png", strings.NewReader("1"), "image/png", false))

	err := s.Put(ctx, "umkm-images", "a.png", strings.NewReader("2"), "image/png", false)
	assert.ErrorIs(t, err, ErrObjectExists)

	require.NoError(t, s.Put(ctx, "umkm-images", "a.png", strings.NewReader("3"), "image/png", true))
	assert.Nil(t, client.puts[2].IfNoneMatch)

	obj, err := s.Get(ctx, "umkm-images", "a.png")
	require.NoError(t, err)
	assert.Equal(t, "3", readObject(t, obj))
}

func TestS3Store_Errors(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	s := NewS3StoreWithClient(client, "umkmhub")

	_, err := s.Get(ctx, "umkm-images", "missing.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	err = s.Put(ctx, "umkm-images", "../x", strings.NewReader("1"), "", false)
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Empty(t, client.puts)

	client.putErr = errors.New("network down")
	err = s.Put(ctx, "umkm-images", "a.png", strings.NewReader("1"), "", false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrObjectExists)
}
