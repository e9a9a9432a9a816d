// Package common defines sentinel errors and small helpers shared by the
// SkillSwap client packages. Callers should use errors.Is to match the
// sentinels.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Form-level errors. Concrete validation failures wrap ErrValidation.
	ErrValidation = errors.New("validation error")
)
