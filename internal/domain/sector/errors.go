package sector

import "errors"

var (
	ErrSectorNotFound = errors.New("sector not found")
	ErrSectorInUse    = errors.New("sector has employees assigned")
)
