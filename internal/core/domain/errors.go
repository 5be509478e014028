package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAlreadyInList      = errors.New("movie already in list")
	ErrNotInList          = errors.New("movie not in list")
	ErrImageNotFound      = errors.New("profile image not found")
)
