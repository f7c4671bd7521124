package objects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FSStore хранит объекты в файловой системе.
// Данные лежат в <root>/data/<bucket>/<key>, метаданные в <root>/meta/<bucket>/<key>.json.
type FSStore struct {
	root string
}

type fsMeta struct {
	ContentType string `json:"content_type"`
}

// NewFSStore создает хранилище в каталоге root
func NewFSStore(root string) (*FSStore, error) {
	for _, dir := range []string{"data", "meta", "tmp"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create object dir: %w", err)
		}
	}
	return &FSStore{root: root}, nil
}

func (s *FSStore) dataPath(bucket, key string) string {
	return filepath.Join(s.root, "data", bucket, filepath.FromSlash(key))
}

func (s *FSStore) metaPath(bucket, key string) string {
	return filepath.Join(s.root, "meta", bucket, filepath.FromSlash(key)+".json")
}

// Put сохраняет объект. Файл сначала пишется во временный, затем
// атомарно переносится: через link без upsert и через rename с upsert.
func (s *FSStore) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string, upsert bool) error {
	if err := ValidateKey(bucket, key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Join(s.root, "tmp"), "upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: body}); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dst := s.dataPath(bucket, key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("failed to create object dir: %w", err)
	}

	if upsert {
		err = os.Rename(tmp.Name(), dst)
	} else {
		err = os.Link(tmp.Name(), dst)
		if errors.Is(err, fs.ErrExist) {
			return ErrObjectExists
		}
	}
	if err != nil {
		return fmt.Errorf("failed to store object: %w", err)
	}

	return s.writeMeta(bucket, key, fsMeta{ContentType: contentTypeOrDefault(contentType)})
}

func (s *FSStore) writeMeta(bucket, key string, meta fsMeta) error {
	path := s.metaPath(bucket, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create meta dir: %w", err)
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal meta: %w", err)
	}

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("failed to write meta: %w", err)
	}
	return nil
}

// Get открывает объект
func (s *FSStore) Get(_ context.Context, bucket, key string) (*Object, error) {
	if err := ValidateKey(bucket, key); err != nil {
		return nil, err
	}

	f, err := os.Open(s.dataPath(bucket, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, ErrObjectNotFound
	}

	meta := fsMeta{ContentType: DefaultContentType}
	if data, err := os.ReadFile(s.metaPath(bucket, key)); err == nil {
		_ = json.Unmarshal(data, &meta)
	}

	return &Object{
		Body:        f,
		ContentType: contentTypeOrDefault(meta.ContentType),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
	}, nil
}

// ctxReader прерывает чтение при отмене контекста
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
