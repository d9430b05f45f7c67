package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/csaops/shrinkage-backend-go/internal/domain/performance"
	"github.com/csaops/shrinkage-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	Trend(w http.ResponseWriter, r *http.Request)
	ListUsernames(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	EmailReport(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.Service
}

func NewPerformanceHandler(performanceService performance.Service) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// Import implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A workbook file is required", nil)
		return
	}
	defer file.Close()

	resp, err := h.performanceService.Import(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance data imported", resp)
}

// Trend implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Trend(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		response.BadRequest(w, "A username query parameter is required", nil)
		return
	}

	resp, err := h.performanceService.Trend(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListUsernames implements PerformanceHandler.
func (h *PerformanceHandlerImpl) ListUsernames(w http.ResponseWriter, r *http.Request) {
	usernames, err := h.performanceService.ListUsernames(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"usernames": usernames})
}

// ExportCSV implements PerformanceHandler.
func (h *PerformanceHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		response.BadRequest(w, "A username query parameter is required", nil)
		return
	}

	data, err := h.performanceService.ExportCSV(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s-performance.csv\"", username))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("Export CSV write error", "error", err)
	}
}

// EmailReport implements PerformanceHandler.
func (h *PerformanceHandlerImpl) EmailReport(w http.ResponseWriter, r *http.Request) {
	var req performance.EmailReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Email report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.performanceService.EmailReport(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report emailed", nil)
}
