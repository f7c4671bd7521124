package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/iudanet/umkmhub/pkg/api"
)

func objectPath(bucket, path string) string {
	segs := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return url.PathEscape(bucket) + "/" + strings.Join(segs, "/")
}

// Upload загружает объект в бакет шлюза.
// Без upsert существующий объект не перезаписывается.
func (c *Client) Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, upsert bool) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}

	header := http.Header{}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	if upsert {
		header.Set(api.HeaderUpsert, "true")
	}

	if err := c.do(ctx, http.MethodPut, "/api/v1/storage/"+objectPath(bucket, path), token, body, header, nil); err != nil {
		return fmt.Errorf("upload %s/%s failed: %w", bucket, path, err)
	}
	return nil
}

// PublicURL возвращает публичный адрес объекта
func (c *Client) PublicURL(bucket, path string) string {
	return c.baseURL + "/api/v1/storage/public/" + objectPath(bucket, path)
}
