package api

// SignUpRequest представляет запрос на регистрацию нового пользователя
type SignUpRequest struct {
	Email    string `json:"email"`               // email пользователя
	Password string `json:"password"`            // пароль в открытом виде (только TLS)
	FullName string `json:"full_name,omitempty"` // отображаемое имя
}

// SignUpResponse представляет ответ на успешную регистрацию
type SignUpResponse struct {
	UserID  string `json:"user_id"` // UUID пользователя
	Message string `json:"message"` // сообщение об успешной регистрации
}

// SignInRequest представляет запрос на аутентификацию
type SignInRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// UserResponse представляет публичные данные пользователя
type UserResponse struct {
	ID       string `json:"id"`                  // UUID пользователя
	Email    string `json:"email"`               // email
	FullName string `json:"full_name,omitempty"` // имя из метаданных
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	User         UserResponse `json:"user"`          // владелец токенов
	AccessToken  string       `json:"access_token"`  // JWT access token
	RefreshToken string       `json:"refresh_token"` // refresh token
	ExpiresIn    int64        `json:"expires_in"`    // время жизни access token в секундах
}

// RecoverRequest представляет запрос на сброс пароля
type RecoverRequest struct {
	Email string `json:"email"` // email учетной записи
}

// ResetPasswordRequest представляет запрос на установку нового пароля
type ResetPasswordRequest struct {
	Token    string `json:"token"`    // одноразовый токен из письма
	Password string `json:"password"` // новый пароль
}

// MessageResponse представляет ответ с информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
