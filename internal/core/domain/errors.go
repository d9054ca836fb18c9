package domain

import "errors"

var (
	// ErrEmailTaken signals a registration attempt with an email that is
	// already on file. Handlers render it as a soft failure, not a 4xx.
	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidID marks an identifier that the store cannot parse.
	ErrInvalidID = errors.New("invalid document id")

	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
