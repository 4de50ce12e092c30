// Package domain defines the core business entities and errors.
package domain

import "errors"

// ErrValidation is the common base of all entity validation errors.
// The per-field sentinels wrap it, so callers can match the whole class
// with errors.Is(err, ErrValidation) or a specific field sentinel.
var ErrValidation = errors.New("validation failed")
