package novedad

import "time"

// Novedad is a payroll reason code mirrored from the external payroll system.
type Novedad struct {
	ID          int
	Code        string
	Description string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}
