package models

// Product представляет товар UMKM
type Product struct {
	UMKMID      *string `json:"umkm_id"`              // ID владельца-UMKM, nil если не привязан
	ID          string  `json:"id,omitempty"`         // UUID записи
	Name        string  `json:"name"`                 // название
	Category    string  `json:"category"`             // категория
	Description string  `json:"description"`          // описание
	ImageURL    string  `json:"image_url"`            // публичный URL изображения
	OwnerID     string  `json:"owner_id,omitempty"`   // ID автора записи
	CreatedAt   string  `json:"created_at,omitempty"` // время создания в RFC3339
	Price       float64 `json:"price"`                // цена
}

// ProductCategories допустимые категории товара
var ProductCategories = []string{"Makanan", "Minuman", "Kerajinan", "Fashion", "Jasa", "Lain-lain"}

// AllCategories значение фильтра категории, означающее все категории
const AllCategories = "Semua"
