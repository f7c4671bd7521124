package api

import "github.com/iudanet/umkmhub/internal/models"

// SelectResponse представляет ответ на выборку записей
type SelectResponse struct {
	Rows  []models.Record `json:"rows"`            // строки выборки
	Count *int            `json:"count,omitempty"` // точное количество, если запрошено count=exact
}

// Параметры строки запроса выборки
const (
	ParamSelect = "select" // список колонок через запятую
	ParamOrder  = "order"  // колонка.asc или колонка.desc
	ParamOffset = "offset"
	ParamLimit  = "limit"
	ParamCount  = "count" // exact
	CountExact  = "exact"
)

// HeaderUpsert заголовок, разрешающий перезапись объекта при загрузке
const HeaderUpsert = "x-upsert"

// ObjectResponse представляет ответ на загрузку объекта
type ObjectResponse struct {
	Key       string `json:"key"`        // bucket/path загруженного объекта
	PublicURL string `json:"public_url"` // публичная ссылка на объект
}
