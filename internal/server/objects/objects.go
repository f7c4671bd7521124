// Package objects хранит загруженные файлы (изображения товаров, логотипы, фото профиля).
// Объект адресуется парой bucket и путь внутри bucket.
package objects

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Ошибки хранилища объектов
var (
	// ErrObjectExists объект уже существует, а перезапись не разрешена
	ErrObjectExists = errors.New("object already exists")
	// ErrObjectNotFound объект не найден
	ErrObjectNotFound = errors.New("object not found")
	// ErrInvalidKey недопустимое имя bucket или путь объекта
	ErrInvalidKey = errors.New("invalid object key")
)

// DefaultContentType тип содержимого, если клиент его не указал
const DefaultContentType = "application/octet-stream"

// Object загруженный объект. Body закрывает вызывающий.
type Object struct {
	ModTime     time.Time
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Store хранилище объектов
type Store interface {
	// Put сохраняет объект. Без upsert существующий объект не перезаписывается
	// и возвращается ErrObjectExists.
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string, upsert bool) error
	// Get возвращает объект или ErrObjectNotFound
	Get(ctx context.Context, bucket, key string) (*Object, error)
}

var bucketPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{1,62}$`)

// ValidateKey проверяет имя bucket и путь объекта.
// Путь не может быть пустым, абсолютным или выходить за пределы bucket.
func ValidateKey(bucket, key string) error {
	if !bucketPattern.MatchString(bucket) {
		return fmt.Errorf("%w: bucket %q", ErrInvalidKey, bucket)
	}

	if key == "" || strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return fmt.Errorf("%w: path %q", ErrInvalidKey, key)
	}

	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsAny(seg, "\\\x00") {
			return fmt.Errorf("%w: path %q", ErrInvalidKey, key)
		}
	}

	return nil
}

func contentTypeOrDefault(contentType string) string {
	if contentType == "" {
		return DefaultContentType
	}
	return contentType
}
