package models

// FavoriteType тип избранной сущности
type FavoriteType string

const (
	FavoriteBusiness FavoriteType = "umkm"
	FavoriteProduct  FavoriteType = "product"
)

// Valid сообщает, является ли тип допустимым
func (t FavoriteType) Valid() bool {
	return t == FavoriteBusiness || t == FavoriteProduct
}

// FavoriteEntry элемент локального списка избранного.
// Уникальность определяется парой (ID, Type).
type FavoriteEntry struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     FavoriteType `json:"type"`
	ImageURL string       `json:"image_url,omitempty"`
	Category string       `json:"category,omitempty"`
}

// ReviewEntry локальный отзыв о товаре, неизменяемый после создания
type ReviewEntry struct {
	Photo  *string `json:"photo"`  // фото автора, nil если нет
	Name   string  `json:"name"`   // имя автора
	Text   string  `json:"text"`   // текст отзыва
	Date   string  `json:"date"`   // время создания в ISO-8601
	ID     int64   `json:"id"`     // метка времени в миллисекундах
	Rating int     `json:"rating"` // оценка 1..5
}

// UserProfile локальный профиль пользователя
type UserProfile struct {
	Photo *string `json:"photo"`           // URL фото, nil если нет
	Name  string  `json:"name"`            // отображаемое имя
	Bio   string  `json:"bio"`             // описание
	Email string  `json:"email,omitempty"` // email, записывается при регистрации
}

// ProductForm данные формы товара.
// ImageURL не попадает в черновик.
type ProductForm struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	UMKMID      string `json:"umkm_id,omitempty"` // UMKM-владелец, может быть пустым
	ImageURL    string `json:"-"`
}

// BusinessForm данные формы UMKM.
// ImageURL не попадает в черновик.
type BusinessForm struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	MapURL      string `json:"map_url"`
	ImageURL    string `json:"-"`
}
