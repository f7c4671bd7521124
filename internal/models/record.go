package models

// Record представляет строку таблицы шлюза в виде набора колонок.
// Значения имеют JSON-совместимые типы: string, float64, nil.
type Record map[string]any

// ID возвращает идентификатор записи или пустую строку
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// String возвращает строковое значение колонки
func (r Record) String(col string) string {
	v, _ := r[col].(string)
	return v
}

// ColumnType тип значения колонки
type ColumnType int

const (
	ColumnText   ColumnType = iota // текст
	ColumnNumber                   // число с плавающей точкой
	ColumnTime                     // время в RFC3339
)

// Column описывает колонку таблицы
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool // допускает NULL
	Writable bool // может задаваться клиентом при вставке и обновлении
}

// Table описывает таблицу записей, доступную через шлюз
type Table struct {
	Name    string
	Columns []Column
}

// Column возвращает описание колонки по имени
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames возвращает имена всех колонок в порядке объявления
func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Имена таблиц
const (
	TableBusinesses = "umkm"
	TableProducts   = "products"
)

var tables = map[string]Table{
	TableBusinesses: {
		Name: TableBusinesses,
		Columns: []Column{
			{Name: "id", Type: ColumnText},
			{Name: "name", Type: ColumnText, Writable: true},
			{Name: "category", Type: ColumnText, Writable: true},
			{Name: "description", Type: ColumnText, Writable: true},
			{Name: "address", Type: ColumnText, Writable: true},
			{Name: "phone", Type: ColumnText, Writable: true},
			{Name: "latitude", Type: ColumnNumber, Nullable: true, Writable: true},
			{Name: "longitude", Type: ColumnNumber, Nullable: true, Writable: true},
			{Name: "image_url", Type: ColumnText, Writable: true},
			{Name: "owner_id", Type: ColumnText},
			{Name: "created_at", Type: ColumnTime},
			{Name: "updated_at", Type: ColumnTime},
		},
	},
	TableProducts: {
		Name: TableProducts,
		Columns: []Column{
			{Name: "id", Type: ColumnText},
			{Name: "umkm_id", Type: ColumnText, Nullable: true, Writable: true},
			{Name: "name", Type: ColumnText, Writable: true},
			{Name: "price", Type: ColumnNumber, Writable: true},
			{Name: "category", Type: ColumnText, Writable: true},
			{Name: "description", Type: ColumnText, Writable: true},
			{Name: "image_url", Type: ColumnText, Writable: true},
			{Name: "owner_id", Type: ColumnText},
			{Name: "created_at", Type: ColumnTime},
			{Name: "updated_at", Type: ColumnTime},
		},
	},
}

// LookupTable возвращает описание таблицы по имени
func LookupTable(name string) (Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// FilterOp оператор фильтра выборки
type FilterOp string

const (
	OpEq    FilterOp = "eq"    // точное совпадение
	OpILike FilterOp = "ilike" // регистронезависимое вхождение подстроки
)

// Filter условие выборки по колонке
type Filter struct {
	Column string   `json:"column"`
	Op     FilterOp `json:"op"`
	Value  string   `json:"value"`
}

// Query описывает выборку: фильтры, сортировку, диапазон и подсчет
type Query struct {
	Columns []string `json:"columns,omitempty"` // пустой список означает все колонки
	Filters []Filter `json:"filters,omitempty"`
	OrderBy string   `json:"order_by,omitempty"`
	Desc    bool     `json:"desc,omitempty"`
	Offset  int      `json:"offset,omitempty"`
	Limit   int      `json:"limit,omitempty"` // 0 означает без ограничения
	Count   bool     `json:"count,omitempty"` // точный подсчет всех строк под фильтром
}

// RecordPage результат выборки
type RecordPage struct {
	Rows  []Record `json:"rows"`
	Count int      `json:"count"` // заполняется только при Query.Count
}
