package domain

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrForbidden       = errors.New("access denied")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrPersistence     = errors.New("storage failure")
)
