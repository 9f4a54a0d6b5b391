package http

import (
	"encoding/json"
	"net/http"

	"github.com/fichadas/timeclock-backend-go/internal/domain/export"
	"github.com/fichadas/timeclock-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
	}
}

func (h *exportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	var req export.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(req.PunchIDs) == 0 {
		response.BadRequest(w, "No punches selected for export", nil)
		return
	}

	result, err := h.exportService.Export(r.Context(), req.PunchIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result.Message, result, result.Warnings)
}
