package domain

import "errors"

// Common domain errors. Repositories translate driver errors into these so
// usecases never depend on pgx.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)
