package hours

import (
	"context"
	"time"
)

// HoursService computes the minute buckets for a single punch. The season is
// an explicit input: it is never derived from the wall clock.
type HoursService interface {
	Calculate(ctx context.Context, employeeID int, entry, exit time.Time, isSummer bool) (Result, error)
}
