package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/storage"
)

func newStorage(t *testing.T) (*Storage, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewWithPool(mock), mock
}

var userColumns = []string{"id", "email", "password_hash", "full_name", "created_at", "last_login"}

func TestStorage_CreateUser(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()
	ctx := context.Background()

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        "siti@example.com",
		PasswordHash: "hash",
		FullName:     "Siti",
		CreatedAt:    time.Now(),
	}

	insert := `INSERT INTO users \(id, email, password_hash, full_name, created_at, last_login\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)`

	mock.ExpectExec(insert).
		WithArgs(u.ID, u.Email, u.PasswordHash, u.FullName, u.CreatedAt, u.LastLogin).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, s.CreateUser(ctx, u))

	mock.ExpectExec(insert).
		WithArgs(u.ID, u.Email, u.PasswordHash, u.FullName, u.CreatedAt, u.LastLogin).
		WillReturnError(&pgconn.PgError{Code: codeUniqueViolation})
	assert.ErrorIs(t, s.CreateUser(ctx, u), storage.ErrUserAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_GetUserByEmail(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()
	ctx := context.Background()

	id := uuid.NewString()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	query := `SELECT id, email, password_hash, full_name, created_at, last_login FROM users WHERE lower\(email\) = lower\(\$1\)`

	mock.ExpectQuery(query).
		WithArgs("Siti@Example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(id, "siti@example.com", "hash", "Siti", created, (*time.Time)(nil)))

	u, err := s.GetUserByEmail(ctx, "Siti@Example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, created, u.CreatedAt)
	assert.Nil(t, u.LastLogin)

	mock.ExpectQuery(query).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_GetUserByID_InvalidUUID(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: codeInvalidText})

	_, err := s.GetUserByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_UpdatePassword(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()
	ctx := context.Background()

	update := `UPDATE users SET password_hash = \$2 WHERE id = \$1`

	mock.ExpectExec(update).WithArgs("u1", "new").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, s.UpdatePassword(ctx, "u1", "new"))

	mock.ExpectExec(update).WithArgs("u2", "new").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, s.UpdatePassword(ctx, "u2", "new"), storage.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_RefreshTokens(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, token_hash, expires_at, created_at FROM refresh_tokens WHERE token_hash = \$1`).
		WithArgs("hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}).
			AddRow("t1", "u1", "hash", now.Add(time.Hour), now))

	token, err := s.GetRefreshToken(ctx, "hash")
	require.NoError(t, err)
	assert.Equal(t, "u1", token.UserID)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token_hash = \$1`).
		WithArgs("gone").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, s.DeleteRefreshToken(ctx, "gone"), storage.ErrTokenNotFound)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	count, err := s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_MarkPasswordResetUsed(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()
	ctx := context.Background()
	now := time.Now()

	update := `UPDATE password_resets SET used_at = \$2 WHERE id = \$1 AND used_at IS NULL`

	mock.ExpectExec(update).WithArgs("r1", now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, s.MarkPasswordResetUsed(ctx, "r1", now))

	mock.ExpectExec(update).WithArgs("r1", now).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, s.MarkPasswordResetUsed(ctx, "r1", now), storage.ErrTokenNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_Select(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "name", "price" FROM "products" WHERE "name" ILIKE $1 ORDER BY "name" ASC, "id" LIMIT 6 OFFSET 6`)).
		WithArgs("%kopi%").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price"}).
			AddRow([16]byte(id), "Kopi Susu", 15000.0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "products" WHERE "name" ILIKE $1`)).
		WithArgs("%kopi%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	page, err := s.Select(context.Background(), models.TableProducts, models.Query{
		Columns: []string{"id", "name", "price"},
		Filters: []models.Filter{{Column: "name", Op: models.OpILike, Value: "kopi"}},
		OrderBy: "name",
		Offset:  6,
		Limit:   6,
		Count:   true,
	})
	require.NoError(t, err)

	require.Len(t, page.Rows, 1)
	assert.Equal(t, models.Record{"id": id.String(), "name": "Kopi Susu", "price": 15000.0}, page.Rows[0])
	assert.Equal(t, 7, page.Count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_Select_UnknownTable(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()

	_, err := s.Select(context.Background(), "users", models.Query{})
	assert.ErrorIs(t, err, storage.ErrUnknownTable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_Get(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()
	ctx := context.Background()

	table, err := storage.Table(models.TableProducts)
	require.NoError(t, err)
	getSQL := regexp.QuoteMeta(storage.GetQuery(dialect{}, table))

	created := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(getSQL).
		WithArgs("p1").
		WillReturnRows(pgxmock.NewRows(table.ColumnNames()).
			AddRow("p1", nil, "Kopi", 15000.0, "Minuman", "Robusta", "", "u1", created, created))

	rec, err := s.Get(ctx, models.TableProducts, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Kopi", rec["name"])
	assert.Nil(t, rec["umkm_id"])
	assert.Equal(t, "2025-02-01T09:00:00Z", rec["created_at"])

	mock.ExpectQuery(getSQL).
		WithArgs("p2").
		WillReturnRows(pgxmock.NewRows(table.ColumnNames()))
	_, err = s.Get(ctx, models.TableProducts, "p2")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	mock.ExpectQuery(getSQL).
		WithArgs("bad").
		WillReturnError(&pgconn.PgError{Code: codeInvalidText})
	_, err = s.Get(ctx, models.TableProducts, "bad")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_Insert(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()

	table, err := storage.Table(models.TableProducts)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "products" ("name", "price", "id", "owner_id", "created_at", "updated_at") VALUES ($1, $2, $3, $4, $5, $6)`)).
		WithArgs("Kopi", 15000.0, pgxmock.AnyArg(), "u1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(storage.GetQuery(dialect{}, table))).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(table.ColumnNames()).
			AddRow("p1", nil, "Kopi", 15000.0, "", "", "", "u1", created, created))

	rec, err := s.Insert(context.Background(), models.TableProducts, "u1", models.Record{"name": "Kopi", "price": 15000.0})
	require.NoError(t, err)
	assert.Equal(t, "u1", rec["owner_id"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_Insert_ForeignKey(t *testing.T) {
	s, mock := newStorage(t)
	defer mock.Close()

	umkmID := uuid.NewString()

	mock.ExpectExec(`INSERT INTO "products"`).
		WithArgs(umkmID, pgxmock.AnyArg(), "u1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation})

	_, err := s.Insert(context.Background(), models.TableProducts, "u1", models.Record{"umkm_id": umkmID})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_UpdateAndDelete(t *testing.T) {
	ownerSQL := regexp.QuoteMeta(`SELECT "owner_id" FROM "umkm" WHERE "id" = $1`)

	tests := []struct {
		setup     func(mock pgxmock.PgxPoolIface)
		run       func(s *Storage) error
		wantError error
		name      string
	}{
		{
			name: "owner updates",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(ownerSQL).WithArgs("b1").
					WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("u1"))
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "umkm" SET "phone" = $1, "updated_at" = $2 WHERE "id" = $3`)).
					WithArgs("0812", pgxmock.AnyArg(), "b1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			run: func(s *Storage) error {
				return s.Update(context.Background(), models.TableBusinesses, "b1", "u1", models.Record{"phone": "0812"})
			},
		},
		{
			name: "other user cannot update",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(ownerSQL).WithArgs("b1").
					WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("u1"))
			},
			run: func(s *Storage) error {
				return s.Update(context.Background(), models.TableBusinesses, "b1", "u2", models.Record{"phone": "0812"})
			},
			wantError: storage.ErrForbidden,
		},
		{
			name: "owner deletes",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(ownerSQL).WithArgs("b1").
					WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("u1"))
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "umkm" WHERE "id" = $1`)).WithArgs("b1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			run: func(s *Storage) error {
				return s.Delete(context.Background(), models.TableBusinesses, "b1", "u1")
			},
		},
		{
			name: "delete missing",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(ownerSQL).WithArgs("b9").WillReturnError(pgx.ErrNoRows)
			},
			run: func(s *Storage) error {
				return s.Delete(context.Background(), models.TableBusinesses, "b9", "u1")
			},
			wantError: storage.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStorage(t)
			defer mock.Close()

			tt.setup(mock)

			err := tt.run(s)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDialect(t *testing.T) {
	d := dialect{}
	assert.Equal(t, "$3", d.Placeholder(3))
	assert.Equal(t, `"name" ILIKE $1`, d.ILike(`"name"`, "$1"))
	assert.Equal(t, "OFFSET 10", d.Paginate(0, 10))
	assert.Equal(t, "LIMIT 5 OFFSET 10", d.Paginate(5, 10))
}
