package calcconfig

import "errors"

var (
	ErrConfigNotFound  = errors.New("calculation configuration not found")
	ErrInvalidShift    = errors.New("shift type must be day or night")
	ErrShiftRequired   = errors.New("shift type is required for rotating sectors")
	ErrShiftNotAllowed = errors.New("shift type is only valid for rotating sectors")
)
