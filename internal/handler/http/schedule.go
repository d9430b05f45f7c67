package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/handler/http/response"
)

// maxImportSize caps uploaded workbooks at 10 MiB.
const maxImportSize = 10 << 20

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	ListWeeks(w http.ResponseWriter, r *http.Request)
	ListLogins(w http.ResponseWriter, r *http.Request)
	DeleteEntries(w http.ResponseWriter, r *http.Request)
	DeleteWeeks(w http.ResponseWriter, r *http.Request)
	DeleteByIDs(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule created", resp)
}

// Import implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.scheduleService.ImportSchedule(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule imported", resp)
}

// GetWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 {
		response.BadRequest(w, "A positive week query parameter is required", nil)
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.scheduleService.GetWeekSchedule(r.Context(), week, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListWeeks implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.scheduleService.ListWeeks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"weeks": weeks})
}

// ListLogins implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListLogins(w http.ResponseWriter, r *http.Request) {
	logins, err := h.scheduleService.ListLogins(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"logins": logins})
}

// DeleteEntries implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteEntries(w http.ResponseWriter, r *http.Request) {
	var req schedule.DeleteEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Delete entries decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.DeleteEntries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entries deleted", resp)
}

// DeleteWeeks implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteWeeks(w http.ResponseWriter, r *http.Request) {
	var req schedule.DeleteWeeksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Delete weeks decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.DeleteWeeks(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weeks deleted", resp)
}

// DeleteByIDs implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteByIDs(w http.ResponseWriter, r *http.Request) {
	var req schedule.DeleteByIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Delete by ids decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.DeleteByIDs(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entries deleted", resp)
}
