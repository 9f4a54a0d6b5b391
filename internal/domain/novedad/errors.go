package novedad

import "errors"

var (
	ErrNovedadNotFound = errors.New("novedad not found")
	ErrCodeExists      = errors.New("novedad code already exists")
)
