package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/storage"
	"github.com/iudanet/umkmhub/pkg/api"
)

// maxRecordBody ограничивает размер JSON тела записи
const maxRecordBody = 1 << 20

// RecordsHandler обрабатывает запросы к таблицам записей
type RecordsHandler struct {
	responder
	records storage.RecordStorage
}

// NewRecordsHandler создает новый handler для записей
func NewRecordsHandler(logger *slog.Logger, records storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		responder: responder{logger: logger},
		records:   records,
	}
}

// Select обрабатывает GET /api/v1/records/{table}
func (h *RecordsHandler) Select(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	q, err := api.DecodeQuery(r.URL.Query())
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.records.Select(r.Context(), table, q)
	if err != nil {
		h.storageError(w, r, "select", err)
		return
	}

	resp := api.SelectResponse{Rows: page.Rows}
	if resp.Rows == nil {
		resp.Rows = []models.Record{}
	}
	if q.Count {
		count := page.Count
		resp.Count = &count
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/records/{table}/{id}
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.records.Get(r.Context(), chi.URLParam(r, "table"), chi.URLParam(r, "id"))
	if err != nil {
		h.storageError(w, r, "get", err)
		return
	}

	h.sendJSON(w, rec, http.StatusOK)
}

// Insert обрабатывает POST /api/v1/records/{table}
// id, owner_id и временные метки назначает шлюз
func (h *RecordsHandler) Insert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rec, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	created, err := h.records.Insert(ctx, chi.URLParam(r, "table"), userID, rec)
	if err != nil {
		h.storageError(w, r, "insert", err)
		return
	}

	h.logger.InfoContext(ctx, "record created",
		slog.String("table", chi.URLParam(r, "table")),
		slog.String("id", created.ID()),
		slog.String("user_id", userID))

	h.sendJSON(w, created, http.StatusCreated)
}

// Update обрабатывает PATCH /api/v1/records/{table}/{id}
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	patch, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	if err := h.records.Update(ctx, chi.URLParam(r, "table"), chi.URLParam(r, "id"), userID, patch); err != nil {
		h.storageError(w, r, "update", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/records/{table}/{id}
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.records.Delete(ctx, chi.URLParam(r, "table"), chi.URLParam(r, "id"), userID); err != nil {
		h.storageError(w, r, "delete", err)
		return
	}

	h.logger.InfoContext(ctx, "record deleted",
		slog.String("table", chi.URLParam(r, "table")),
		slog.String("id", chi.URLParam(r, "id")),
		slog.String("user_id", userID))

	w.WriteHeader(http.StatusNoContent)
}

// decodeRecord читает JSON объект записи; числа остаются json.Number
func (h *RecordsHandler) decodeRecord(w http.ResponseWriter, r *http.Request) (models.Record, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecordBody))
	dec.UseNumber()

	var rec models.Record
	if err := dec.Decode(&rec); err != nil || rec == nil {
		h.sendError(w, "request body must be a JSON object", http.StatusBadRequest)
		return nil, false
	}

	return rec, true
}

// storageError переводит ошибку хранилища в HTTP статус
func (h *RecordsHandler) storageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrUnknownTable):
		h.sendError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrRecordNotFound):
		h.sendError(w, "record not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrForbidden):
		h.logger.WarnContext(r.Context(), "forbidden record access",
			slog.String("op", op),
			slog.String("table", chi.URLParam(r, "table")),
			slog.String("id", chi.URLParam(r, "id")))
		h.sendError(w, "record belongs to another user", http.StatusForbidden)
	case errors.Is(err, storage.ErrInvalidQuery):
		h.sendError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(r.Context(), "record storage failed",
			slog.String("op", op),
			slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}
