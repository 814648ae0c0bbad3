package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a submitted form breaks a rule
	// other than the password requirement.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPasswordRequired is returned when a new account is submitted
	// without a password.
	ErrPasswordRequired = errors.New("password is required")

	// ErrWrongCredentials is returned by Login for an unknown username or a
	// password that does not match.
	ErrWrongCredentials = errors.New("wrong username or password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
