package util

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("permission denied")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrUserNotFound      = errors.New("user not found")
)
