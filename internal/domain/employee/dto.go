package employee

import (
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/pkg/validator"
)

type UpsertEmployeeRequest struct {
	Name          string  `json:"name"`
	Legajo        *int    `json:"legajo"`
	SectorID      *int    `json:"sector_id"`
	EntryTime     *string `json:"entry_time"`     // "HH:MM"
	ExitTime      *string `json:"exit_time"`      // "HH:MM"
	RotationStart *string `json:"rotation_start"` // "2006-01-02"
}

func (r UpsertEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.EntryTime != nil {
		if _, ok := validator.ParseClock(*r.EntryTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "must be HH:MM"})
		}
	}
	if r.ExitTime != nil {
		if _, ok := validator.ParseClock(*r.ExitTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_time", Message: "must be HH:MM"})
		}
	}
	if r.RotationStart != nil {
		if _, ok := validator.IsValidDate(*r.RotationStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "rotation_start", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts the request into an Employee. Validate must have passed.
func (r UpsertEmployeeRequest) ToEntity() Employee {
	emp := Employee{
		Name:     &r.Name,
		Legajo:   r.Legajo,
		SectorID: r.SectorID,
	}
	if r.EntryTime != nil {
		d, _ := validator.ParseClock(*r.EntryTime)
		emp.EntryTime = &d
	}
	if r.ExitTime != nil {
		d, _ := validator.ParseClock(*r.ExitTime)
		emp.ExitTime = &d
	}
	if r.RotationStart != nil {
		t, _ := time.Parse("2006-01-02", *r.RotationStart)
		emp.RotationStart = &t
	}
	return emp
}

type EmployeeResponse struct {
	ID            int     `json:"id"`
	Name          *string `json:"name"`
	Legajo        *int    `json:"legajo"`
	SectorID      *int    `json:"sector_id"`
	SectorName    *string `json:"sector_name"`
	EntryTime     *string `json:"entry_time"`
	ExitTime      *string `json:"exit_time"`
	RotationStart *string `json:"rotation_start"`
}

func ToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Legajo:     emp.Legajo,
		SectorID:   emp.SectorID,
		SectorName: emp.SectorName,
	}
	if emp.EntryTime != nil {
		s := validator.FormatClock(*emp.EntryTime)
		resp.EntryTime = &s
	}
	if emp.ExitTime != nil {
		s := validator.FormatClock(*emp.ExitTime)
		resp.ExitTime = &s
	}
	if emp.RotationStart != nil {
		s := emp.RotationStart.Format("2006-01-02")
		resp.RotationStart = &s
	}
	return resp
}
