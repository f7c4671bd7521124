package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/umkmhub/internal/server/objects"
	"github.com/iudanet/umkmhub/pkg/api"
)

// ObjectsHandler обрабатывает загрузку и раздачу объектов
type ObjectsHandler struct {
	responder
	store         objects.Store
	publicBaseURL string
	maxUploadSize int64
}

// NewObjectsHandler создает новый handler для объектов
// publicBaseURL задает префикс публичных ссылок; пустой дает относительные ссылки
func NewObjectsHandler(logger *slog.Logger, store objects.Store, maxUploadSize int64, publicBaseURL string) *ObjectsHandler {
	return &ObjectsHandler{
		responder:     responder{logger: logger},
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxUploadSize: maxUploadSize,
	}
}

// PublicPath путь публичной раздачи объекта
func PublicPath(bucket, key string) string {
	segs := strings.Split(key, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return "/api/v1/storage/public/" + url.PathEscape(bucket) + "/" + strings.Join(segs, "/")
}

// objectKey возвращает bucket и путь объекта из маршрута
func objectKey(r *http.Request) (string, string) {
	bucket := chi.URLParam(r, "bucket")
	key := chi.URLParam(r, "*")

	// chi отдает сырые сегменты, если путь содержал экранирование
	if r.URL.RawPath != "" {
		if b, err := url.PathUnescape(bucket); err == nil {
			bucket = b
		}
		if k, err := url.PathUnescape(key); err == nil {
			key = k
		}
	}

	return bucket, key
}

// Upload обрабатывает PUT /api/v1/storage/{bucket}/{path...}
// Без заголовка x-upsert: true существующий объект не перезаписывается
func (h *ObjectsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bucket, key := objectKey(r)

	if err := objects.ValidateKey(bucket, key); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.ContentLength > h.maxUploadSize {
		h.sendError(w, "object is too large", http.StatusRequestEntityTooLarge)
		return
	}

	upsert, _ := strconv.ParseBool(r.Header.Get(api.HeaderUpsert))
	body := http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	err := h.store.Put(ctx, bucket, key, body, r.Header.Get("Content-Type"), upsert)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			h.sendError(w, "object is too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, objects.ErrObjectExists):
			h.sendError(w, "object already exists", http.StatusConflict)
		case errors.Is(err, objects.ErrInvalidKey):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.ErrorContext(ctx, "failed to store object",
				slog.String("bucket", bucket),
				slog.String("key", key),
				slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	userID, _ := GetUserID(ctx)
	h.logger.InfoContext(ctx, "object stored",
		slog.String("bucket", bucket),
		slog.String("key", key),
		slog.String("user_id", userID),
		slog.Bool("upsert", upsert))

	h.sendJSON(w, api.ObjectResponse{
		Key:       bucket + "/" + key,
		PublicURL: h.publicBaseURL + PublicPath(bucket, key),
	}, http.StatusOK)
}

// Public обрабатывает GET /api/v1/storage/public/{bucket}/{path...}
func (h *ObjectsHandler) Public(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bucket, key := objectKey(r)

	if err := objects.ValidateKey(bucket, key); err != nil {
		h.sendError(w, "object not found", http.StatusNotFound)
		return
	}

	obj, err := h.store.Get(ctx, bucket, key)
	if err != nil {
		if errors.Is(err, objects.ErrObjectNotFound) {
			h.sendError(w, "object not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to read object", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer obj.Body.Close()

	w.Header().Set("Content-Type", obj.ContentType)
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	if !obj.ModTime.IsZero() {
		w.Header().Set("Last-Modified", obj.ModTime.UTC().Format(http.TimeFormat))
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := io.Copy(w, obj.Body); err != nil {
		h.logger.WarnContext(ctx, "failed to stream object", slog.Any("error", err))
	}
}
