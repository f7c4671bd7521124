package models

// Business представляет карточку UMKM (микропредприятия)
type Business struct {
	Latitude    *float64 `json:"latitude"`             // широта, nil если не задана
	Longitude   *float64 `json:"longitude"`            // долгота, nil если не задана
	ID          string   `json:"id,omitempty"`         // UUID записи
	Name        string   `json:"name"`                 // название
	Category    string   `json:"category"`             // категория
	Description string   `json:"description"`          // описание
	Address     string   `json:"address"`              // адрес
	Phone       string   `json:"phone"`                // телефон
	ImageURL    string   `json:"image_url"`            // публичный URL логотипа
	OwnerID     string   `json:"owner_id,omitempty"`   // ID владельца
	CreatedAt   string   `json:"created_at,omitempty"` // время создания в RFC3339
}

// HasLocation сообщает, заданы ли координаты
func (b Business) HasLocation() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// Location точка на карте для экрана локаций
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCenter центр карты по умолчанию (Семаранг)
var DefaultCenter = Location{Name: "Semarang", Latitude: -6.966667, Longitude: 110.416664}

// BusinessCategories категории для быстрых ссылок главного экрана
var BusinessCategories = []string{"Makanan", "Minuman", "Fashion", "Kerajinan", "Jasa"}
