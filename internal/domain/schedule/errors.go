package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("No schedule record found for the provided login and week")
	ErrDayNotWorkable   = errors.New("Cannot code leave because the day status is not 'W'")
	ErrDayAlreadyCoded  = errors.New("Day already holds a leave code")
	ErrNoLeaveToDelete  = errors.New("No coded leave on this day to delete")
	ErrInvalidLeaveType = errors.New("Invalid leave type")

	ErrImportColumnsMissing = errors.New("Workbook is missing one or more required columns")
	ErrImportEmpty          = errors.New("Workbook contains no data rows")
)
