package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

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

	rows, err := s.pool.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}

	page := &models.RecordPage{Rows: []models.Record{}}

	page.Rows, err = collectRecords(rows, cols)
	if err != nil {
		return nil, err
	}

	if count != nil {
		if err := s.pool.QueryRow(ctx, count.SQL, count.Args...).Scan(&page.Count); err != nil {
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

	var recs []models.Record

	rows, err := s.pool.Query(ctx, storage.GetQuery(dialect{}, t), id)
	if err == nil {
		recs, err = collectRecords(rows, t.Columns)
	}
	if err != nil {
		// id не в формате UUID не может существовать в таблице
		if pgCode(err) == codeInvalidText {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	if len(recs) == 0 {
		return nil, storage.ErrRecordNotFound
	}
	return recs[0], nil
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
	now := time.Now().UTC().Truncate(time.Second)

	cols = append(cols, storage.ColumnID, storage.ColumnOwnerID, storage.ColumnCreatedAt, storage.ColumnUpdatedAt)
	vals = append(vals, id, ownerID, now, now)

	stmt := storage.BuildInsert(dialect{}, t, cols, vals)
	if _, err := s.pool.Exec(ctx, stmt.SQL, stmt.Args...); err != nil {
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
	vals = append(vals, time.Now().UTC().Truncate(time.Second))

	stmt := storage.BuildUpdate(dialect{}, t, cols, vals, id)
	tag, err := s.pool.Exec(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return writeError("update", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrRecordNotFound
	}
	return nil
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

	tag, err := s.pool.Exec(ctx, storage.DeleteQuery(dialect{}, t), id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrRecordNotFound
	}
	return nil
}

func (s *Storage) checkOwner(ctx context.Context, t models.Table, id, ownerID string) error {
	var owner string
	if err := s.pool.QueryRow(ctx, storage.OwnerQuery(dialect{}, t), id).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidText {
			return storage.ErrRecordNotFound
		}
		return fmt.Errorf("failed to get record owner: %w", err)
	}

	return storage.CheckOwner(owner, ownerID)
}

func collectRecords(rows pgx.Rows, cols []models.Column) ([]models.Record, error) {
	defer rows.Close()

	recs := []models.Record{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		rec := make(models.Record, len(cols))
		for i, c := range cols {
			rec[c.Name] = storage.NormalizeValue(c, values[i])
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return recs, nil
}

func writeError(op string, err error) error {
	switch pgCode(err) {
	case codeForeignKeyViolation, codeInvalidText:
		return fmt.Errorf("%w: %v", storage.ErrInvalidQuery, err)
	}
	return fmt.Errorf("failed to %s record: %w", op, err)
}
