package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/csaops/shrinkage-backend-go/internal/domain/leave"
	"github.com/csaops/shrinkage-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Code(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateEntryDay(w http.ResponseWriter, r *http.Request)
	BulkSetStatus(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Code implements LeaveHandler.
func (h *LeaveHandlerImpl) Code(w http.ResponseWriter, r *http.Request) {
	var req leave.CodeLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Code leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.CodeLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave coding processed", resp)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	var req leave.DeleteLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Delete leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.DeleteLeave(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave deleted", nil)
}

// UpdateEntryDay implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateEntryDay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(w, "A valid schedule id is required", nil)
		return
	}

	var req leave.UpdateEntryDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update entry day decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.leaveService.UpdateEntryDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day status updated", nil)
}

// BulkSetStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.BulkSetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk set status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.BulkSetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk status processed", resp)
}

// Summary implements LeaveHandler.
func (h *LeaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	login := r.URL.Query().Get("login")
	if login == "" {
		response.BadRequest(w, "A login query parameter is required", nil)
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.leaveService.Summary(r.Context(), login, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
