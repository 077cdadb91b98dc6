// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors shared by services and adapters. Wrap them with
// fmt.Errorf("%w: ...") and test with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)
