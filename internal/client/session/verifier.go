package session

import (
	"context"
	"strings"
)

// Demo credentials accepted on the sign-in path.
const (
	DemoEmail    = "test@student.com"
	DemoPassword = "12345"
)

// Verifier checks a sign-in attempt. It returns ErrInvalidCredentials when
// the pair is rejected.
type Verifier interface {
	Verify(ctx context.Context, email string, password []byte) error
}

// DemoVerifier accepts DemoEmail/DemoPassword only. Both values are
// compared after trimming surrounding whitespace.
//
// TODO: replace with a verifier backed by the account service once the
// client talks to a backend.
type DemoVerifier struct{}

func (DemoVerifier) Verify(ctx context.Context, email string, password []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(email) == DemoEmail && strings.TrimSpace(string(password)) == DemoPassword {
		return nil
	}
	return ErrInvalidCredentials
}
