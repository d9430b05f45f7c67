package leave

import (
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/validator"
)

type CodeLeaveRequest struct {
	Login      string   `json:"login"`
	Week       int      `json:"week"`
	Year       int      `json:"year,omitempty"`
	Days       []string `json:"days"`
	LeaveType  string   `json:"leave_type"`
	Annotation string   `json:"annotation,omitempty"`
}

func (r *CodeLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login is required",
		})
	}
	if r.Week < 1 || r.Week > 54 {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week must be between 1 and 54",
		})
	}
	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one day is required",
		})
	}
	for _, token := range r.Days {
		if _, err := calendar.ParseDay(token); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must be day tokens (Sun..Sat)",
			})
			break
		}
	}
	if _, ok := schedule.ParseLeaveCode(r.LeaveType); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of AL, SL, CL, L",
		})
	}
	if r.Year < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteLeaveRequest struct {
	Login string `json:"login"`
	Week  int    `json:"week"`
	Day   string `json:"day"`
}

func (r *DeleteLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login is required",
		})
	}
	if r.Week < 1 || r.Week > 54 {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week must be between 1 and 54",
		})
	}
	if _, err := calendar.ParseDay(r.Day); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be a day token (Sun..Sat)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEntryDayRequest is the single-entry administrative override:
// reset a day to W, or place a generic leave through the shared guard.
type UpdateEntryDayRequest struct {
	ID    int64  `json:"id"`
	Day   string `json:"day"`
	Value string `json:"value"`
}

func (r *UpdateEntryDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if _, err := calendar.ParseDay(r.Day); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be a day token (Sun..Sat)",
		})
	}
	if !validator.IsInSlice(r.Value, []string{"W", "L"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be W or L",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkSetStatusRequest struct {
	Logins []string `json:"logins"`
	Weeks  []int    `json:"weeks"`
	Days   []string `json:"days"`
	Value  string   `json:"value"`
}

func (r *BulkSetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Logins) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "logins",
			Message: "at least one login is required",
		})
	}
	if len(r.Weeks) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weeks",
			Message: "at least one week is required",
		})
	}
	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one day is required",
		})
	}
	for _, token := range r.Days {
		if _, err := calendar.ParseDay(token); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must be day tokens (Sun..Sat)",
			})
			break
		}
	}
	if !validator.IsInSlice(r.Value, []string{"W", "L"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be W or L",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayResult reports the outcome of one per-day transition inside a
// multi-day request.
type DayResult struct {
	Day    string `json:"day"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type CodeLeaveResponse struct {
	Login   string      `json:"login"`
	Week    int         `json:"week"`
	Results []DayResult `json:"results"`
}

// BulkSetStatusResponse reports the partial-application outcome of a
// cartesian bulk update. Skips are expected, not errors.
type BulkSetStatusResponse struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

type RecordResponse struct {
	ID         int64  `json:"id"`
	Login      string `json:"login"`
	Week       int    `json:"week"`
	Day        string `json:"day"`
	Date       string `json:"date,omitempty"`
	LeaveType  string `json:"leave_type"`
	Annotation string `json:"annotation,omitempty"`
}

type SummaryResponse struct {
	Login       string           `json:"login"`
	TotalLeaves int              `json:"total_leaves"`
	Records     []RecordResponse `json:"records"`
}
