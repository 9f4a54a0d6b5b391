package novedad

import "github.com/fichadas/timeclock-backend-go/internal/pkg/validator"

type UpsertNovedadRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (r UpsertNovedadRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpsertNovedadRequest) ToEntity() Novedad {
	return Novedad{
		Code:        r.Code,
		Description: r.Description,
	}
}

type NovedadResponse struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func ToResponse(n Novedad) NovedadResponse {
	return NovedadResponse{
		ID:          n.ID,
		Code:        n.Code,
		Description: n.Description,
	}
}
