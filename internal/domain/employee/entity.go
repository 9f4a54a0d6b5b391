package employee

import (
	"time"
)

type Employee struct {
	ID            int
	Name          *string
	Legajo        *int
	SectorID      *int
	EntryTime     *time.Duration
	ExitTime      *time.Duration
	RotationStart *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	// DTO
	SectorName *string
}
