package http

import (
	"net/http"
	"strconv"

	"github.com/csaops/shrinkage-backend-go/internal/domain/report"
	"github.com/csaops/shrinkage-backend-go/internal/handler/http/response"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	WeeklyOverview(w http.ResponseWriter, r *http.Request)
	WeekShrinkage(w http.ResponseWriter, r *http.Request)
	DayShrinkage(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	AnnualReport(w http.ResponseWriter, r *http.Request)
	GoalAnalysis(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// WeeklyOverview implements ReportHandler.
func (h *ReportHandlerImpl) WeeklyOverview(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.WeeklyOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"weeks": rows})
}

// WeekShrinkage implements ReportHandler.
func (h *ReportHandlerImpl) WeekShrinkage(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 {
		response.BadRequest(w, "A positive week is required", nil)
		return
	}

	resp, err := h.reportService.WeekShrinkage(r.Context(), week)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DayShrinkage implements ReportHandler.
func (h *ReportHandlerImpl) DayShrinkage(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 {
		response.BadRequest(w, "A positive week query parameter is required", nil)
		return
	}
	day, err := calendar.ParseDay(r.URL.Query().Get("day"))
	if err != nil {
		response.BadRequest(w, "A day query parameter (sun..sat) is required", nil)
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.reportService.DayShrinkage(r.Context(), week, day, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "A month query parameter between 1 and 12 is required", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		response.BadRequest(w, "A positive year query parameter is required", nil)
		return
	}
	goal, _ := strconv.ParseFloat(r.URL.Query().Get("goal"), 64)

	resp, err := h.reportService.MonthlyReport(r.Context(), month, year, goal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AnnualReport implements ReportHandler.
func (h *ReportHandlerImpl) AnnualReport(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		response.BadRequest(w, "A positive year query parameter is required", nil)
		return
	}
	goal, _ := strconv.ParseFloat(r.URL.Query().Get("goal"), 64)

	resp, err := h.reportService.AnnualReport(r.Context(), year, goal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GoalAnalysis implements ReportHandler.
func (h *ReportHandlerImpl) GoalAnalysis(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 {
		response.BadRequest(w, "A positive week query parameter is required", nil)
		return
	}
	goal, err := strconv.ParseFloat(r.URL.Query().Get("goal"), 64)
	if err != nil || goal < 0 {
		response.BadRequest(w, "A non-negative goal query parameter is required", nil)
		return
	}

	resp, err := h.reportService.AnalyzeGoalForWeek(r.Context(), week, goal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
