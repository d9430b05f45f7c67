package performance

import (
	"github.com/csaops/shrinkage-backend-go/internal/pkg/validator"
)

// TrendRow is one week of an employee's trend, with week-over-week
// deltas. Deltas are nil on the earliest week.
type TrendRow struct {
	Week         int      `json:"week"`
	Metric1      float64  `json:"metric1"`
	Metric2      float64  `json:"metric2"`
	Metric1Delta *float64 `json:"metric1_delta,omitempty"`
	Metric2Delta *float64 `json:"metric2_delta,omitempty"`
}

type TrendResponse struct {
	Username string     `json:"username"`
	Rows     []TrendRow `json:"rows"`
}

type ImportResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
}

type EmailReportRequest struct {
	Username string `json:"username"`
	To       string `json:"to"`
}

func (r *EmailReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if !validator.IsValidEmail(r.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
