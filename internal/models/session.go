package models

import "time"

// SessionUser пользователь, которому принадлежит сессия
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Session сессия, выданная шлюзом при входе
type Session struct {
	ExpiresAt    time.Time   `json:"expires_at"`    // момент истечения access token
	User         SessionUser `json:"user"`          // владелец сессии
	AccessToken  string      `json:"access_token"`  // JWT access token
	RefreshToken string      `json:"refresh_token"` // refresh token
}

// Expired сообщает, истек ли access token к моменту now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
