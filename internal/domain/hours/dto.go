package hours

import (
	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
)

// Result carries the categorized minute buckets for one entry/exit pair.
// Business-rule anomalies (missing configuration, uncategorized time, shift
// mismatches) surface as warnings, never as errors: a Result with all-zero
// buckets and a warning is a valid outcome.
type Result struct {
	TotalMinutes      int
	WorkedMinutes     int
	OvertimeMinutes   int
	AdditionalMinutes int
	LateMinutes       int
	DeductionMinutes  int
	Config            *calcconfig.Config
	Warnings          []string
}

// EffectiveMinutes is the pool the tiered allocation distributed.
func (r Result) EffectiveMinutes() int {
	eff := r.TotalMinutes - r.DeductionMinutes
	if eff < 0 {
		return 0
	}
	return eff
}
