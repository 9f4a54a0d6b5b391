package http

import (
	"encoding/json"
	"net/http"

	"github.com/fichadas/timeclock-backend-go/internal/domain/novedad"
	"github.com/fichadas/timeclock-backend-go/internal/handler/http/response"
)

type NovedadHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type novedadHandlerImpl struct {
	novedadRepo novedad.NovedadRepository
}

func NewNovedadHandler(novedadRepo novedad.NovedadRepository) NovedadHandler {
	return &novedadHandlerImpl{
		novedadRepo: novedadRepo,
	}
}

func (h *novedadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	novedades, err := h.novedadRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]novedad.NovedadResponse, 0, len(novedades))
	for _, n := range novedades {
		responses = append(responses, novedad.ToResponse(n))
	}
	response.Success(w, responses)
}

func (h *novedadHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid novedad id", nil)
		return
	}

	n, err := h.novedadRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, novedad.ToResponse(*n))
}

func (h *novedadHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req novedad.UpsertNovedadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := h.novedadRepo.Create(r.Context(), req.ToEntity())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.novedadRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Novedad created successfully", novedad.ToResponse(*created))
}

func (h *novedadHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid novedad id", nil)
		return
	}

	var req novedad.UpsertNovedadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	n := req.ToEntity()
	n.ID = id
	if err := h.novedadRepo.Update(r.Context(), n); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.novedadRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Novedad updated successfully", novedad.ToResponse(*updated))
}

func (h *novedadHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid novedad id", nil)
		return
	}

	if err := h.novedadRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Novedad deleted successfully", nil)
}
