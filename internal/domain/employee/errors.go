package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrLegajoExists     = errors.New("legajo already registered")
)
