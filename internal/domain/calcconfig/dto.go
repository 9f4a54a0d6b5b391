package calcconfig

import (
	"context"

	"github.com/fichadas/timeclock-backend-go/internal/pkg/validator"
)

type ConfigService interface {
	Get(ctx context.Context, id int) (ConfigResponse, error)
	List(ctx context.Context) ([]ConfigResponse, error)
	ListBySector(ctx context.Context, sectorID int) ([]ConfigResponse, error)
	Create(ctx context.Context, req UpsertConfigRequest) (ConfigResponse, error)
	Update(ctx context.Context, id int, req UpsertConfigRequest) (ConfigResponse, error)
	Delete(ctx context.Context, id int) error
}

type UpsertConfigRequest struct {
	SectorID                int     `json:"sector_id"`
	IsSummer                bool    `json:"is_summer"`
	NormalHours             int     `json:"normal_hours"`
	OfficialOvertimeHours   int     `json:"official_overtime_hours"`
	AdditionalOvertimeHours int     `json:"additional_overtime_hours"`
	ToleranceMinutes        int     `json:"tolerance_minutes"`
	LateDeduction6To30      int     `json:"late_deduction_6_30"`
	LateDeduction31Plus     int     `json:"late_deduction_31_plus"`
	ExpectedEntry           *string `json:"expected_entry"` // "HH:MM"
	ExpectedExit            *string `json:"expected_exit"`  // "HH:MM"
	ShiftType               *string `json:"shift_type"`
	Active                  bool    `json:"active"`
}

func (r UpsertConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SectorID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "sector_id", Message: "sector_id is required"})
	}
	if r.NormalHours < 0 || r.OfficialOvertimeHours < 0 || r.AdditionalOvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hour thresholds cannot be negative"})
	}
	if r.ToleranceMinutes < 0 || r.LateDeduction6To30 < 0 || r.LateDeduction31Plus < 0 {
		errs = append(errs, validator.ValidationError{Field: "minutes", Message: "minute values cannot be negative"})
	}
	if r.ShiftType != nil && *r.ShiftType != ShiftDay && *r.ShiftType != ShiftNight {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "must be day or night"})
	}
	if r.ExpectedEntry != nil {
		if _, ok := validator.ParseClock(*r.ExpectedEntry); !ok {
			errs = append(errs, validator.ValidationError{Field: "expected_entry", Message: "must be HH:MM"})
		}
	}
	if r.ExpectedExit != nil {
		if _, ok := validator.ParseClock(*r.ExpectedExit); !ok {
			errs = append(errs, validator.ValidationError{Field: "expected_exit", Message: "must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts the request into a Config. Validate must have passed.
func (r UpsertConfigRequest) ToEntity() Config {
	cfg := Config{
		SectorID:                r.SectorID,
		IsSummer:                r.IsSummer,
		NormalHours:             r.NormalHours,
		OfficialOvertimeHours:   r.OfficialOvertimeHours,
		AdditionalOvertimeHours: r.AdditionalOvertimeHours,
		ToleranceMinutes:        r.ToleranceMinutes,
		LateDeduction6To30:      r.LateDeduction6To30,
		LateDeduction31Plus:     r.LateDeduction31Plus,
		ShiftType:               r.ShiftType,
		Active:                  r.Active,
	}
	if r.ExpectedEntry != nil {
		d, _ := validator.ParseClock(*r.ExpectedEntry)
		cfg.ExpectedEntry = &d
	}
	if r.ExpectedExit != nil {
		d, _ := validator.ParseClock(*r.ExpectedExit)
		cfg.ExpectedExit = &d
	}
	return cfg
}

type ConfigResponse struct {
	ID                      int     `json:"id"`
	SectorID                int     `json:"sector_id"`
	IsSummer                bool    `json:"is_summer"`
	NormalHours             int     `json:"normal_hours"`
	OfficialOvertimeHours   int     `json:"official_overtime_hours"`
	AdditionalOvertimeHours int     `json:"additional_overtime_hours"`
	ToleranceMinutes        int     `json:"tolerance_minutes"`
	LateDeduction6To30      int     `json:"late_deduction_6_30"`
	LateDeduction31Plus     int     `json:"late_deduction_31_plus"`
	ExpectedEntry           *string `json:"expected_entry"`
	ExpectedExit            *string `json:"expected_exit"`
	ShiftType               *string `json:"shift_type"`
	Active                  bool    `json:"active"`
}

func ToResponse(cfg Config) ConfigResponse {
	resp := ConfigResponse{
		ID:                      cfg.ID,
		SectorID:                cfg.SectorID,
		IsSummer:                cfg.IsSummer,
		NormalHours:             cfg.NormalHours,
		OfficialOvertimeHours:   cfg.OfficialOvertimeHours,
		AdditionalOvertimeHours: cfg.AdditionalOvertimeHours,
		ToleranceMinutes:        cfg.ToleranceMinutes,
		LateDeduction6To30:      cfg.LateDeduction6To30,
		LateDeduction31Plus:     cfg.LateDeduction31Plus,
		ShiftType:               cfg.ShiftType,
		Active:                  cfg.Active,
	}
	if cfg.ExpectedEntry != nil {
		s := validator.FormatClock(*cfg.ExpectedEntry)
		resp.ExpectedEntry = &s
	}
	if cfg.ExpectedExit != nil {
		s := validator.FormatClock(*cfg.ExpectedExit)
		resp.ExpectedExit = &s
	}
	return resp
}
