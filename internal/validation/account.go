package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern определяет упрощенный допустимый формат email
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxPasswordLen максимальная длина пароля
	MaxPasswordLen = 72
)

// ErrPasswordMismatch пароль и подтверждение не совпадают
var ErrPasswordMismatch = errors.New("password and confirmation do not match")

// ValidateEmail проверяет, что email не пустой и имеет вид local@domain.tld
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}

	return nil
}

// ValidatePasswordConfirmation проверяет совпадение пароля и подтверждения.
// Сравнение выполняется до любых обращений к шлюзу.
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
