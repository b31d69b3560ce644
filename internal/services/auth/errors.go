package auth

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
