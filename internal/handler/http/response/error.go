package response

import (
	"errors"
	"net/http"

	"github.com/csaops/shrinkage-backend-go/internal/domain/auth"
	"github.com/csaops/shrinkage-backend-go/internal/domain/performance"
	"github.com/csaops/shrinkage-backend-go/internal/domain/report"
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, schedule.ErrDayNotWorkable):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrDayAlreadyCoded):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrNoLeaveToDelete):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrInvalidLeaveType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrImportColumnsMissing):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrImportEmpty):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrWeekNotFound):
		NotFound(w, err.Error())

	// Performance domain errors
	case errors.Is(err, performance.ErrNoData):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
