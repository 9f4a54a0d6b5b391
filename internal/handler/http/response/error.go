package response

import (
	"errors"
	"net/http"

	"github.com/fichadas/timeclock-backend-go/internal/domain/auth"
	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
	"github.com/fichadas/timeclock-backend-go/internal/domain/employee"
	"github.com/fichadas/timeclock-backend-go/internal/domain/novedad"
	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
	"github.com/fichadas/timeclock-backend-go/internal/domain/user"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrLegajoExists):
		Conflict(w, "Legajo already registered")

	// Sector domain errors
	case errors.Is(err, sector.ErrSectorNotFound):
		NotFound(w, "Sector not found")
	case errors.Is(err, sector.ErrSectorInUse):
		Conflict(w, "Sector is referenced by employees or configurations")

	// Novedad domain errors
	case errors.Is(err, novedad.ErrNovedadNotFound):
		NotFound(w, "Novedad not found")
	case errors.Is(err, novedad.ErrCodeExists):
		Conflict(w, "Novedad code already registered")

	// Configuration domain errors
	case errors.Is(err, calcconfig.ErrConfigNotFound):
		NotFound(w, "Calculation configuration not found")
	case errors.Is(err, calcconfig.ErrInvalidShift):
		BadRequest(w, "Shift type must be day or night", nil)
	case errors.Is(err, calcconfig.ErrShiftRequired):
		BadRequest(w, "Rotating sectors require a shift type", nil)
	case errors.Is(err, calcconfig.ErrShiftNotAllowed):
		BadRequest(w, "Shift type is only valid for rotating sectors", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrPunchExported):
		Conflict(w, "Punch was already exported and cannot be modified")
	case errors.Is(err, punch.ErrMissingEmployee):
		BadRequest(w, "Punch has no employee assigned", nil)
	case errors.Is(err, punch.ErrMissingTimes):
		BadRequest(w, "Punch needs both entry and exit times", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
