package storage

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/umkmhub/internal/models"
)

// Dialect описывает различия SQL-диалектов хранилищ
type Dialect interface {
	// Placeholder возвращает параметр запроса с порядковым номером n (с 1)
	Placeholder(n int) string
	// ILike возвращает условие регистронезависимого вхождения подстроки
	ILike(column, placeholder string) string
	// Paginate возвращает LIMIT/OFFSET; limit 0 означает без ограничения
	Paginate(limit, offset int) string
}

// Statement SQL-запрос с аргументами
type Statement struct {
	SQL  string
	Args []any
}

// Служебные колонки, которые заполняет хранилище
const (
	ColumnID        = "id"
	ColumnOwnerID   = "owner_id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
)

// Table возвращает описание таблицы или ErrUnknownTable
func Table(name string) (models.Table, error) {
	t, ok := models.LookupTable(name)
	if !ok {
		return models.Table{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return t, nil
}

// quote заключает имя колонки или таблицы в кавычки.
// Имена берутся только из описания таблицы.
func quote(name string) string {
	return `"` + name + `"`
}

// BuildSelect строит запрос выборки и, если запрошен подсчет, запрос COUNT.
// Возвращает колонки в порядке SELECT для разбора строк.
func BuildSelect(d Dialect, t models.Table, q models.Query) (Statement, *Statement, []models.Column, error) {
	cols, err := selectColumns(t, q.Columns)
	if err != nil {
		return Statement{}, nil, nil, err
	}

	where, args, err := buildWhere(d, t, q.Filters)
	if err != nil {
		return Statement{}, nil, nil, err
	}

	order, err := buildOrder(t, q.OrderBy, q.Desc)
	if err != nil {
		return Statement{}, nil, nil, err
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c.Name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(names, ", "), quote(t.Name))
	sb.WriteString(where)
	sb.WriteString(order)
	if p := d.Paginate(q.Limit, q.Offset); p != "" {
		sb.WriteString(" " + p)
	}

	rows := Statement{SQL: sb.String(), Args: args}

	var count *Statement
	if q.Count {
		count = &Statement{
			SQL:  fmt.Sprintf("SELECT COUNT(*) FROM %s%s", quote(t.Name), where),
			Args: args,
		}
	}

	return rows, count, cols, nil
}

func selectColumns(t models.Table, names []string) ([]models.Column, error) {
	if len(names) == 0 {
		return t.Columns, nil
	}

	cols := make([]models.Column, 0, len(names))
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown column %q", ErrInvalidQuery, name)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func buildWhere(d Dialect, t models.Table, filters []models.Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	conds := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))

	for _, f := range filters {
		c, ok := t.Column(f.Column)
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown column %q", ErrInvalidQuery, f.Column)
		}

		ph := d.Placeholder(len(args) + 1)

		switch f.Op {
		case models.OpEq:
			v, err := filterValue(c, f.Value)
			if err != nil {
				return "", nil, err
			}
			conds = append(conds, quote(c.Name)+" = "+ph)
			args = append(args, v)
		case models.OpILike:
			if c.Type != models.ColumnText {
				return "", nil, fmt.Errorf("%w: ilike on non-text column %q", ErrInvalidQuery, c.Name)
			}
			conds = append(conds, d.ILike(quote(c.Name), ph))
			args = append(args, "%"+escapeLike(f.Value)+"%")
		default:
			return "", nil, fmt.Errorf("%w: unsupported operator %q", ErrInvalidQuery, f.Op)
		}
	}

	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func filterValue(c models.Column, raw string) (any, error) {
	if c.Type != models.ColumnNumber {
		return raw, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: column %q expects a number", ErrInvalidQuery, c.Name)
	}
	return n, nil
}

// escapeLike экранирует спецсимволы LIKE, экранирующий символ - обратная косая черта
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// buildOrder сортирует по колонке и затем по id, чтобы страницы не пересекались
func buildOrder(t models.Table, column string, desc bool) (string, error) {
	if column == "" {
		return " ORDER BY " + quote(ColumnCreatedAt) + ", " + quote(ColumnID), nil
	}

	if _, ok := t.Column(column); !ok {
		return "", fmt.Errorf("%w: unknown order column %q", ErrInvalidQuery, column)
	}

	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	order := " ORDER BY " + quote(column) + " " + dir
	if column != ColumnID {
		order += ", " + quote(ColumnID)
	}
	return order, nil
}

// PrepareWrite проверяет колонки записи и приводит значения к типам таблицы.
// Колонки возвращаются отсортированными по имени.
func PrepareWrite(t models.Table, rec models.Record) ([]string, []any, error) {
	cols := make([]string, 0, len(rec))
	for name := range rec {
		cols = append(cols, name)
	}
	slices.Sort(cols)

	vals := make([]any, 0, len(cols))
	for _, name := range cols {
		c, ok := t.Column(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown column %q", ErrInvalidQuery, name)
		}
		if !c.Writable {
			return nil, nil, fmt.Errorf("%w: column %q is read-only", ErrInvalidQuery, name)
		}

		v, err := writeValue(c, rec[name])
		if err != nil {
			return nil, nil, err
		}
		vals = append(vals, v)
	}

	return cols, vals, nil
}

func writeValue(c models.Column, v any) (any, error) {
	if v == nil {
		if !c.Nullable {
			return nil, fmt.Errorf("%w: column %q cannot be null", ErrInvalidQuery, c.Name)
		}
		return nil, nil
	}

	switch c.Type {
	case models.ColumnNumber:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: column %q expects a number", ErrInvalidQuery, c.Name)
			}
			return f, nil
		}
	case models.ColumnText:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: column %q has wrong type %T", ErrInvalidQuery, c.Name, v)
}

// BuildInsert строит INSERT по подготовленным колонкам
func BuildInsert(d Dialect, t models.Table, cols []string, vals []any) Statement {
	names := make([]string, len(cols))
	phs := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c)
		phs[i] = d.Placeholder(i + 1)
	}

	return Statement{
		SQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quote(t.Name), strings.Join(names, ", "), strings.Join(phs, ", ")),
		Args: vals,
	}
}

// BuildUpdate строит UPDATE по подготовленным колонкам для строки id
func BuildUpdate(d Dialect, t models.Table, cols []string, vals []any, id string) Statement {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = quote(c) + " = " + d.Placeholder(i+1)
	}

	args := append(slices.Clone(vals), id)

	return Statement{
		SQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
			quote(t.Name), strings.Join(sets, ", "), quote(ColumnID), d.Placeholder(len(args))),
		Args: args,
	}
}

// OwnerQuery возвращает запрос владельца строки
func OwnerQuery(d Dialect, t models.Table) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
		quote(ColumnOwnerID), quote(t.Name), quote(ColumnID), d.Placeholder(1))
}

// DeleteQuery возвращает запрос удаления строки по id
func DeleteQuery(d Dialect, t models.Table) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = %s", quote(t.Name), quote(ColumnID), d.Placeholder(1))
}

// GetQuery возвращает запрос строки по id со всеми колонками
func GetQuery(d Dialect, t models.Table) string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = quote(c.Name)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
		strings.Join(names, ", "), quote(t.Name), quote(ColumnID), d.Placeholder(1))
}

// CheckOwner сравнивает владельца строки с автором запроса
func CheckOwner(owner, userID string) error {
	if owner != userID {
		return ErrForbidden
	}
	return nil
}

// NormalizeValue приводит значение, прочитанное драйвером, к JSON-совместимому типу колонки
func NormalizeValue(c models.Column, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case []byte:
		return string(x)
	case [16]byte:
		return uuid.UUID(x).String()
	case int64:
		if c.Type == models.ColumnNumber {
			return float64(x)
		}
		return strconv.FormatInt(x, 10)
	case float32:
		return float64(x)
	}
	return v
}

// NewRecordID генерирует идентификатор новой строки
func NewRecordID() string {
	return uuid.NewString()
}
