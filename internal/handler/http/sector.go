package http

import (
	"encoding/json"
	"net/http"

	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
	"github.com/fichadas/timeclock-backend-go/internal/handler/http/response"
)

type SectorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type sectorHandlerImpl struct {
	sectorRepo sector.SectorRepository
}

func NewSectorHandler(sectorRepo sector.SectorRepository) SectorHandler {
	return &sectorHandlerImpl{
		sectorRepo: sectorRepo,
	}
}

func (h *sectorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sectors, err := h.sectorRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]sector.SectorResponse, 0, len(sectors))
	for _, s := range sectors {
		responses = append(responses, sector.ToResponse(s))
	}
	response.Success(w, responses)
}

func (h *sectorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid sector id", nil)
		return
	}

	s, err := h.sectorRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sector.ToResponse(*s))
}

func (h *sectorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sector.UpsertSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := h.sectorRepo.Create(r.Context(), req.ToEntity())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.sectorRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sector created successfully", sector.ToResponse(*created))
}

func (h *sectorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid sector id", nil)
		return
	}

	var req sector.UpsertSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	s := req.ToEntity()
	s.ID = id
	if err := h.sectorRepo.Update(r.Context(), s); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.sectorRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sector updated successfully", sector.ToResponse(*updated))
}

func (h *sectorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid sector id", nil)
		return
	}

	if err := h.sectorRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sector deleted successfully", nil)
}
