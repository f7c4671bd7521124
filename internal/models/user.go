package models

import "time"

// User представляет пользователя шлюза
type User struct {
	CreatedAt    time.Time  `json:"created_at"`           // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"` // время последнего входа
	ID           string     `json:"id"`                   // UUID пользователя
	Email        string     `json:"email"`                // уникальный email
	PasswordHash string     `json:"-"`                    // argon2id хеш пароля в PHC-формате
	FullName     string     `json:"full_name,omitempty"`  // имя из метаданных регистрации
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	ID        string    `json:"id"`         // UUID токена
	UserID    string    `json:"user_id"`    // ID пользователя
	TokenHash string    `json:"token_hash"` // SHA256 хеш токена
}

// PasswordReset представляет одноразовый токен сброса пароля
type PasswordReset struct {
	ExpiresAt time.Time  `json:"expires_at"`        // время истечения
	CreatedAt time.Time  `json:"created_at"`        // время создания
	UsedAt    *time.Time `json:"used_at,omitempty"` // время использования, nil пока токен не погашен
	ID        string     `json:"id"`                // UUID записи
	UserID    string     `json:"user_id"`           // ID пользователя
	TokenHash string     `json:"token_hash"`        // SHA256 хеш токена
}
