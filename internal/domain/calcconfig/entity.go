package calcconfig

import "time"

// Shift types for rotating sectors. Non-rotating sectors carry no shift type.
const (
	ShiftDay   = "day"
	ShiftNight = "night"
)

// Config holds the hour-calculation rules for one (sector, season, shift) key.
// Hour thresholds are whole hours; deductions and tolerance are minutes.
type Config struct {
	ID                      int
	SectorID                int
	IsSummer                bool
	NormalHours             int
	OfficialOvertimeHours   int
	AdditionalOvertimeHours int
	ToleranceMinutes        int
	LateDeduction6To30      int
	LateDeduction31Plus     int
	ExpectedEntry           *time.Duration
	ExpectedExit            *time.Duration
	ShiftType               *string
	Active                  bool
	CreatedAt               time.Time
	UpdatedAt               *time.Time
}
