package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/storage"
)

// Select returns rows matching the query
func (s *Storage) Select(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
	t, err := storage.Table(table)
	if err != nil {
		return nil, err
	}

	stmt, count, cols, err := storage.BuildSelect(dialect{}, t, q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	page := &models.RecordPage{Rows: []models.Record{}}

	for rows.Next() {
		rec, err := scanRecord(rows, cols)
		if err != nil {
			return nil, err
		}
		page.Rows = append(page.Rows, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	if count != nil {
		if err := s.db.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&page.Count); err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
	}

	return page, nil
}

// Get retrieves one row by id
func (s *Storage) Get(ctx context.Context, table, id string) (models.Record, error) {
	t, err := storage.Table(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, storage.GetQuery(dialect{}, t), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get record: %w", err)
		}
		return nil, storage.ErrRecordNotFound
	}

	return scanRecord(rows, t.Columns)
}

// Insert creates a row owned by ownerID
func (s *Storage) Insert(ctx context.Context, table, ownerID string, rec models.Record) (models.Record, error) {
	t, err := storage.Table(table)
	if err != nil {
		return nil, err
	}

	cols, vals, err := storage.PrepareWrite(t, rec)
	if err != nil {
		return nil, err
	}

	id := storage.NewRecordID()
	now := timestamp(time.Now())

	cols = append(cols, storage.ColumnID, storage.ColumnOwnerID, storage.ColumnCreatedAt, storage.ColumnUpdatedAt)
	vals = append(vals, id, ownerID, now, now)

	stmt := storage.BuildInsert(dialect{}, t, cols, vals)
	if _, err := s.db.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
		return nil, writeError("insert", err)
	}

	return s.Get(ctx, table, id)
}

// Update applies a partial patch to a row owned by ownerID
func (s *Storage) Update(ctx context.Context, table, id, ownerID string, patch models.Record) error {
	t, err := storage.Table(table)
	if err != nil {
		return err
	}

	cols, vals, err := storage.PrepareWrite(t, patch)
	if err != nil {
		return err
	}

	if err := s.checkOwner(ctx, t, id, ownerID); err != nil {
		return err
	}

	cols = append(cols, storage.ColumnUpdatedAt)
	vals = append(vals, timestamp(time.Now()))

	stmt := storage.BuildUpdate(dialect{}, t, cols, vals, id)
	result, err := s.db.ExecContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return writeError("update", err)
	}

	return expectAffected(result, storage.ErrRecordNotFound)
}

// Delete deletes a row owned by ownerID
func (s *Storage) Delete(ctx context.Context, table, id, ownerID string) error {
	t, err := storage.Table(table)
	if err != nil {
		return err
	}

	if err := s.checkOwner(ctx, t, id, ownerID); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, storage.DeleteQuery(dialect{}, t), id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return expectAffected(result, storage.ErrRecordNotFound)
}

func (s *Storage) checkOwner(ctx context.Context, t models.Table, id, ownerID string) error {
	var owner string
	err := s.db.QueryRowContext(ctx, storage.OwnerQuery(dialect{}, t), id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrRecordNotFound
		}
		return fmt.Errorf("failed to get record owner: %w", err)
	}

	return storage.CheckOwner(owner, ownerID)
}

func scanRecord(rows *sql.Rows, cols []models.Column) (models.Record, error) {
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	rec := make(models.Record, len(cols))
	for i, c := range cols {
		rec[c.Name] = storage.NormalizeValue(c, values[i])
	}
	return rec, nil
}

// timestamp форматирует время записи; строки одной длины сортируются как время
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// writeError отделяет нарушение ссылочной целостности от прочих ошибок
func writeError(op string, err error) error {
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return fmt.Errorf("%w: referenced record does not exist", storage.ErrInvalidQuery)
	}
	return fmt.Errorf("failed to %s record: %w", op, err)
}
