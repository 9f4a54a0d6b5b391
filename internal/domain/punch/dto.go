package punch

import (
	"context"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/pkg/validator"
)

type PunchService interface {
	Get(ctx context.Context, id int) (PunchResponse, error)
	List(ctx context.Context, filter Filter) ([]PunchResponse, error)
	ListByEmployee(ctx context.Context, employeeID int) ([]PunchResponse, error)
	Create(ctx context.Context, req UpsertPunchRequest) (PunchResponse, error)
	Update(ctx context.Context, id int, req UpsertPunchRequest) (PunchResponse, error)
	Delete(ctx context.Context, id int) error

	// Recalculate reruns the hours calculation for one non-exported punch.
	Recalculate(ctx context.Context, id int, isSummer bool) (RecalculateResponse, error)

	// RecalculateAll reruns the calculation for every non-exported punch,
	// collecting per-record errors instead of stopping.
	RecalculateAll(ctx context.Context, isSummer bool) (RecalculateAllResponse, error)

	// Import creates punches from pre-parsed import rows.
	Import(ctx context.Context, rows []ImportRow, isSummer bool) (ImportResult, error)
}

type UpsertPunchRequest struct {
	EmployeeID *int    `json:"employee_id"`
	Entry      *string `json:"entry"` // RFC3339
	Exit       *string `json:"exit"`  // RFC3339
	NovedadID  *int    `json:"novedad_id"`
	IsSummer   bool    `json:"is_summer"`
}

func (r UpsertPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Entry != nil {
		if _, ok := validator.IsValidDateTime(*r.Entry); !ok {
			errs = append(errs, validator.ValidationError{Field: "entry", Message: "must be an RFC3339 timestamp"})
		}
	}
	if r.Exit != nil {
		if _, ok := validator.IsValidDateTime(*r.Exit); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit", Message: "must be an RFC3339 timestamp"})
		}
	}
	if r.Entry != nil && r.Exit != nil {
		entry, okIn := validator.IsValidDateTime(*r.Entry)
		exit, okOut := validator.IsValidDateTime(*r.Exit)
		if okIn && okOut && exit.Before(entry) {
			errs = append(errs, validator.ValidationError{Field: "exit", Message: "exit must not precede entry"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts the request into a Punch. Validate must have passed.
func (r UpsertPunchRequest) ToEntity() Punch {
	p := Punch{
		EmployeeID: r.EmployeeID,
		NovedadID:  r.NovedadID,
	}
	if r.Entry != nil {
		t, _ := validator.IsValidDateTime(*r.Entry)
		p.Entry = &t
	}
	if r.Exit != nil {
		t, _ := validator.IsValidDateTime(*r.Exit)
		p.Exit = &t
	}
	return p
}

// ImportRow is one already-parsed line from the clock file: the spreadsheet
// parsing itself happens upstream, this service only interprets the punch
// pair string ("08:00;17:00", or "08:00;17+30" for a next-day exit).
type ImportRow struct {
	Legajo    int    `json:"legajo"`
	Date      string `json:"date"` // "2006-01-02"
	PunchPair string `json:"punch_pair"`
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type RecalculateResponse struct {
	Message           string   `json:"message"`
	TotalMinutes      int      `json:"total_minutes"`
	WorkedMinutes     int      `json:"worked_minutes"`
	OvertimeMinutes   int      `json:"overtime_minutes"`
	AdditionalMinutes int      `json:"additional_minutes"`
	Warnings          []string `json:"warnings"`
}

type RecalculateAllResponse struct {
	Message      string   `json:"message"`
	Recalculated int      `json:"recalculated"`
	Skipped      int      `json:"skipped"`
	Failed       int      `json:"failed"`
	Warnings     []string `json:"warnings"`
}

type PunchResponse struct {
	ID                int      `json:"id"`
	EmployeeID        *int     `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name"`
	EmployeeLegajo    *int     `json:"employee_legajo"`
	SectorName        *string  `json:"sector_name"`
	Entry             *string  `json:"entry"`
	Exit              *string  `json:"exit"`
	TotalMinutes      *int     `json:"total_minutes"`
	WorkedMinutes     *int     `json:"worked_minutes"`
	OvertimeMinutes   *int     `json:"overtime_minutes"`
	AdditionalMinutes *int     `json:"additional_minutes"`
	TotalHours        *float64 `json:"total_hours"`
	WorkedHours       *float64 `json:"worked_hours"`
	OvertimeHours     *float64 `json:"overtime_hours"`
	AdditionalHours   *float64 `json:"additional_hours"`
	NovedadID         *int     `json:"novedad_id"`
	NovedadCode       *string  `json:"novedad_code"`
	NovedadDesc       *string  `json:"novedad_desc"`
	Exported          bool     `json:"exported"`
	ExportedAt        *string  `json:"exported_at"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// minutesToHours rounds minutes to decimal hours with 2 decimals, for display
// only. Export sums full-precision hours before inserting.
func minutesToHours(m *int) *float64 {
	if m == nil {
		return nil
	}
	h := float64(*m) / 60.0
	h = float64(int(h*100+0.5)) / 100
	return &h
}

func ToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		EmployeeName:      p.EmployeeName,
		EmployeeLegajo:    p.EmployeeLegajo,
		SectorName:        p.SectorName,
		Entry:             timePtrToString(p.Entry),
		Exit:              timePtrToString(p.Exit),
		TotalMinutes:      p.TotalMinutes,
		WorkedMinutes:     p.WorkedMinutes,
		OvertimeMinutes:   p.OvertimeMinutes,
		AdditionalMinutes: p.AdditionalMinutes,
		TotalHours:        minutesToHours(p.TotalMinutes),
		WorkedHours:       minutesToHours(p.WorkedMinutes),
		OvertimeHours:     minutesToHours(p.OvertimeMinutes),
		AdditionalHours:   minutesToHours(p.AdditionalMinutes),
		NovedadID:         p.NovedadID,
		NovedadCode:       p.NovedadCode,
		NovedadDesc:       p.NovedadDesc,
		Exported:          p.Exported,
		ExportedAt:        timePtrToString(p.ExportedAt),
	}
}
