package auth

import "errors"

var (
	ErrInvalidToken = errors.New("Invalid or expired session token")
)
