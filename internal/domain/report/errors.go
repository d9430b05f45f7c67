package report

import "errors"

var (
	ErrWeekNotFound = errors.New("No schedule data for the requested week")
)
