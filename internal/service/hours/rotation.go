package hours

import (
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
)

// InferShiftType determines which shift a rotating-sector employee works on a
// given date. Shifts alternate every 7 days counted from the rotation start:
// week 0 is night, week 1 is day, and so on with a 14-day period.
func InferShiftType(rotationStart, punchDate time.Time) string {
	start := truncateToDay(rotationStart)
	date := truncateToDay(punchDate)

	daysSinceStart := int(date.Sub(start).Hours() / 24)
	weeksSinceStart := daysSinceStart / 7

	if weeksSinceStart%2 != 0 {
		return calcconfig.ShiftDay
	}
	return calcconfig.ShiftNight
}

// shiftImpliedByEntry maps a clock-in hour to the shift it suggests. Entries
// from noon onward belong to the night shift.
func shiftImpliedByEntry(entry time.Time) string {
	if entry.Hour() >= 12 {
		return calcconfig.ShiftNight
	}
	return calcconfig.ShiftDay
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
