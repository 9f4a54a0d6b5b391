package export

import "time"

// Record is a punch joined with everything the export needs: the employee's
// legajo, the sector's extras novedad and the external payroll system's own
// identifiers for employee and novedades. External ids resolve by matching
// local codes against the payroll ledger's code columns; a missing match
// blocks the export of that punch.
type Record struct {
	PunchID           int
	EmployeeID        *int
	Entry             *time.Time
	Exit              *time.Time
	TotalMinutes      *int
	WorkedMinutes     *int
	OvertimeMinutes   *int
	AdditionalMinutes *int
	NovedadID         *int
	Exported          bool

	EmployeeLegajo        *int
	SectorID              *int
	SectorExtrasNovedadID *int
	NovedadCode           *string
	ExtrasNovedadCode     *string

	ExternalEmployeeID      *int
	ExternalNovedadID       *int
	ExternalExtrasNovedadID *int
}

// LedgerEntry is one consolidated row for the external payroll ledger.
type LedgerEntry struct {
	ExternalEmployeeID int
	ExternalNovedadID  int
	EffectiveDate      time.Time
	QuantityHours      float64
}
