// Package usecase implements the owner account signup and login.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrOwnerAlreadyRegistered is returned by signup once an owner account exists.
	ErrOwnerAlreadyRegistered = errors.New("an owner account is already registered")

	// ErrInvalidCredentials is returned by login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when the password is shorter than the minimum length.
	ErrWeakPassword = errors.New("password is too short")
)
