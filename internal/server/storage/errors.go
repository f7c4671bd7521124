package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh or reset token was not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrRecordNotFound indicates that record was not found in table
	ErrRecordNotFound = errors.New("record not found")

	// ErrForbidden indicates that record belongs to another user
	ErrForbidden = errors.New("record belongs to another user")

	// ErrUnknownTable indicates that table is not exposed by the gateway
	ErrUnknownTable = errors.New("unknown table")

	// ErrInvalidQuery indicates unknown columns or mistyped values in a query or record
	ErrInvalidQuery = errors.New("invalid query")
)
