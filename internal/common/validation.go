package common

// ValidationError reports why user input was rejected. It wraps
// ErrValidation, so errors.Is(err, ErrValidation) matches any of them;
// use errors.As to read the Reason.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation error: " + e.Reason
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError with a user-facing message.
func NewValidationError(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}
