package sector

import "github.com/fichadas/timeclock-backend-go/internal/pkg/validator"

type UpsertSectorRequest struct {
	Name            string `json:"name"`
	IsRotating      bool   `json:"is_rotating"`
	ExtrasNovedadID *int   `json:"extras_novedad_id"`
	WorkedNovedadID *int   `json:"worked_novedad_id"`
}

func (r UpsertSectorRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpsertSectorRequest) ToEntity() Sector {
	return Sector{
		Name:            &r.Name,
		IsRotating:      r.IsRotating,
		ExtrasNovedadID: r.ExtrasNovedadID,
		WorkedNovedadID: r.WorkedNovedadID,
	}
}

type SectorResponse struct {
	ID                int     `json:"id"`
	Name              *string `json:"name"`
	IsRotating        bool    `json:"is_rotating"`
	ExtrasNovedadID   *int    `json:"extras_novedad_id"`
	ExtrasNovedadCode *string `json:"extras_novedad_code"`
	ExtrasNovedadDesc *string `json:"extras_novedad_desc"`
	WorkedNovedadID   *int    `json:"worked_novedad_id"`
	WorkedNovedadCode *string `json:"worked_novedad_code"`
	WorkedNovedadDesc *string `json:"worked_novedad_desc"`
}

func ToResponse(s Sector) SectorResponse {
	return SectorResponse{
		ID:                s.ID,
		Name:              s.Name,
		IsRotating:        s.IsRotating,
		ExtrasNovedadID:   s.ExtrasNovedadID,
		ExtrasNovedadCode: s.ExtrasNovedadCode,
		ExtrasNovedadDesc: s.ExtrasNovedadDesc,
		WorkedNovedadID:   s.WorkedNovedadID,
		WorkedNovedadCode: s.WorkedNovedadCode,
		WorkedNovedadDesc: s.WorkedNovedadDesc,
	}
}
