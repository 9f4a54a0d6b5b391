package punch

import "time"

// Punch is one clock-in/clock-out record (fichada). Minute fields are filled
// by the hours calculator; once Exported is set the record is immutable.
type Punch struct {
	ID                int
	EmployeeID        *int
	Entry             *time.Time
	Exit              *time.Time
	TotalMinutes      *int
	WorkedMinutes     *int
	OvertimeMinutes   *int
	AdditionalMinutes *int
	NovedadID         *int
	Exported          bool
	ExportedAt        *time.Time

	// DTO
	EmployeeName   *string
	EmployeeLegajo *int
	SectorID       *int
	SectorName     *string
	NovedadCode    *string
	NovedadDesc    *string
}
