package session

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBusy               = errors.New("another sign-in is in progress")
	ErrClosed             = errors.New("session closed")
)

// Validation reasons reported by SignUp.
const (
	ReasonInvalidEmail     = "InvalidEmail"
	ReasonPasswordTooShort = "PasswordTooShort"
)
