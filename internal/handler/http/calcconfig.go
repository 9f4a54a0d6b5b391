package http

import (
	"encoding/json"
	"net/http"

	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
	"github.com/fichadas/timeclock-backend-go/internal/handler/http/response"
)

type ConfigHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListBySector(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	configService calcconfig.ConfigService
}

func NewConfigHandler(configService calcconfig.ConfigService) ConfigHandler {
	return &configHandlerImpl{
		configService: configService,
	}
}

func (h *configHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.configService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *configHandlerImpl) ListBySector(w http.ResponseWriter, r *http.Request) {
	sectorID, ok := urlParamInt(r, "sectorID")
	if !ok {
		response.BadRequest(w, "Invalid sector id", nil)
		return
	}

	results, err := h.configService.ListBySector(r.Context(), sectorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *configHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid configuration id", nil)
		return
	}

	result, err := h.configService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *configHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req calcconfig.UpsertConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Configuration created successfully", result)
}

func (h *configHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid configuration id", nil)
		return
	}

	var req calcconfig.UpsertConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration updated successfully", result)
}

func (h *configHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid configuration id", nil)
		return
	}

	if err := h.configService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration deleted successfully", nil)
}
