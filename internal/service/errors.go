package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required fields are missing or
	// malformed.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so callers cannot learn which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
