package http

import (
	"encoding/json"
	"net/http"

	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/fichadas/timeclock-backend-go/internal/handler/http/response"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/validator"
)

type PunchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	RecalculateAll(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// List filters by date range, employee name or legajo, and export state.
// Dates come as YYYY-MM-DD; "to" is inclusive.
func (h *punchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter punch.Filter
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		from, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return
		}
		filter.From = &from
	}
	if raw := q.Get("to"); raw != "" {
		to, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return
		}
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}
	if raw := q.Get("search"); raw != "" {
		filter.EmployeeSearch = &raw
	}
	if exported, ok := queryBool(r, "exported"); ok {
		filter.Exported = &exported
	}

	results, err := h.punchService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *punchHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := urlParamInt(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	results, err := h.punchService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *punchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid punch id", nil)
		return
	}

	result, err := h.punchService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *punchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req punch.UpsertPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch created successfully", result)
}

func (h *punchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid punch id", nil)
		return
	}

	var req punch.UpsertPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch updated successfully", result)
}

func (h *punchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid punch id", nil)
		return
	}

	if err := h.punchService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted successfully", nil)
}

func (h *punchHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid punch id", nil)
		return
	}

	isSummer, _ := queryBool(r, "is_summer")

	result, err := h.punchService.Recalculate(r.Context(), id, isSummer)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result.Message, result, result.Warnings)
}

func (h *punchHandlerImpl) RecalculateAll(w http.ResponseWriter, r *http.Request) {
	isSummer, _ := queryBool(r, "is_summer")

	result, err := h.punchService.RecalculateAll(r.Context(), isSummer)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result.Message, result, result.Warnings)
}

type importRequest struct {
	Rows     []punch.ImportRow `json:"rows"`
	IsSummer bool              `json:"is_summer"`
}

func (h *punchHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(req.Rows) == 0 {
		response.BadRequest(w, "No rows to import", nil)
		return
	}

	result, err := h.punchService.Import(r.Context(), req.Rows, req.IsSummer)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, "Import finished", result, result.Errors)
}
