package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// TokenSize размер случайных токенов (refresh, сброс пароля) в байтах
const TokenSize = 32

// GenerateToken генерирует случайный токен в base64url без паддинга
func GenerateToken() (string, error) {
	b := make([]byte, TokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashToken хеширует токен с использованием SHA256.
// В базе хранится только хеш, сам токен знает лишь клиент.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
