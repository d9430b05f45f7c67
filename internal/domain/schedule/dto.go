package schedule

import (
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	Logins   []string `json:"logins"`
	Weeks    []int    `json:"weeks"`
	Year     int      `json:"year"`
	Shift    string   `json:"shift"`
	Weekoffs []string `json:"weekoffs,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Logins) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "logins",
			Message: "at least one login is required",
		})
	}
	for _, login := range r.Logins {
		if validator.IsEmpty(login) {
			errs = append(errs, validator.ValidationError{
				Field:   "logins",
				Message: "logins must not contain empty values",
			})
			break
		}
	}

	if len(r.Weeks) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weeks",
			Message: "at least one week is required",
		})
	}
	for _, week := range r.Weeks {
		if week < 1 || week > 54 {
			errs = append(errs, validator.ValidationError{
				Field:   "weeks",
				Message: "weeks must be between 1 and 54",
			})
			break
		}
	}

	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	for _, token := range r.Weekoffs {
		if _, err := calendar.ParseDay(token); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "weekoffs",
				Message: "weekoffs must be day tokens (sun..sat)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekoffDays resolves the weekoff tokens. Call Validate first.
func (r *CreateScheduleRequest) WeekoffDays() map[calendar.Day]bool {
	days := make(map[calendar.Day]bool, len(r.Weekoffs))
	for _, token := range r.Weekoffs {
		if d, err := calendar.ParseDay(token); err == nil {
			days[d] = true
		}
	}
	return days
}

type CreateScheduleResponse struct {
	Created   int                  `json:"created"`
	Skipped   int                  `json:"skipped"`
	WeekDates map[int]WeekDatesDTO `json:"week_dates"`
}

// WeekDatesDTO maps day tokens to ISO dates for one week.
type WeekDatesDTO map[string]string

func NewWeekDatesDTO(week, year int) WeekDatesDTO {
	dates := calendar.WeekDates(week, year)
	dto := make(WeekDatesDTO, len(calendar.Days))
	for _, d := range calendar.Days {
		dto[d.String()] = dates[d].Format("2006-01-02")
	}
	return dto
}

type DeleteEntriesRequest struct {
	Logins []string `json:"logins"`
	Weeks  []int    `json:"weeks"`
}

func (r *DeleteEntriesRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteWeeksRequest struct {
	Weeks []int `json:"weeks"`
}

func (r *DeleteWeeksRequest) Validate() error {
	if len(r.Weeks) == 0 {
		return validator.ValidationErrors{{
			Field:   "weeks",
			Message: "at least one week is required",
		}}
	}
	return nil
}

type DeleteByIDsRequest struct {
	IDs []int64 `json:"ids"`
}

func (r *DeleteByIDsRequest) Validate() error {
	if len(r.IDs) == 0 {
		return validator.ValidationErrors{{
			Field:   "ids",
			Message: "at least one schedule id is required",
		}}
	}
	return nil
}

// EntryResponse is one row of the schedule table view.
type EntryResponse struct {
	ID    int64             `json:"id"`
	Login string            `json:"login"`
	Week  int               `json:"week"`
	Shift string            `json:"shift"`
	Cells map[string]string `json:"cells"`
}

func NewEntryResponse(e Entry) EntryResponse {
	cells := make(map[string]string, len(calendar.Days))
	for _, d := range calendar.Days {
		cells[d.String()] = string(e.Cell(d))
	}
	return EntryResponse{
		ID:    e.ID,
		Login: e.Login,
		Week:  e.Week,
		Shift: e.Shift,
		Cells: cells,
	}
}

// WeekScheduleResponse is the schedule table for one week with the
// resolved calendar dates alongside.
type WeekScheduleResponse struct {
	Week    int             `json:"week"`
	Dates   WeekDatesDTO    `json:"dates"`
	Entries []EntryResponse `json:"entries"`
}

// ImportScheduleResponse reports the outcome of a workbook upload.
type ImportScheduleResponse struct {
	BatchID string `json:"batch_id"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// BulkDeleteResponse reports how many rows a bulk delete removed.
type BulkDeleteResponse struct {
	EntriesDeleted int64 `json:"entries_deleted"`
	LeavesDeleted  int64 `json:"leaves_deleted"`
}
