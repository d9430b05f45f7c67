package schedule

import (
	"time"

	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
)

// CellStatus is the value of one day cell of a schedule entry. A cell is
// never blank: it is OFF, W, or exactly one leave code.
type CellStatus string

const (
	StatusOff  CellStatus = "OFF"
	StatusWork CellStatus = "W"

	LeaveAnnual  CellStatus = "AL"
	LeaveSick    CellStatus = "SL"
	LeaveCasual  CellStatus = "CL"
	LeaveGeneric CellStatus = "L"
)

// LeaveCodes is the absence taxonomy, in display order.
var LeaveCodes = []CellStatus{LeaveAnnual, LeaveSick, LeaveCasual, LeaveGeneric}

// IsLeaveCode reports whether s is one of the coded-absence values.
func IsLeaveCode(s CellStatus) bool {
	switch s {
	case LeaveAnnual, LeaveSick, LeaveCasual, LeaveGeneric:
		return true
	}
	return false
}

// ParseLeaveCode validates a caller-supplied leave type token.
func ParseLeaveCode(token string) (CellStatus, bool) {
	s := CellStatus(token)
	return s, IsLeaveCode(s)
}

// Entry is one schedule row: an employee's shift and seven day cells for
// one week.
type Entry struct {
	ID    int64
	Login string
	Week  int
	Shift string
	Cells [7]CellStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cell returns the status of one day.
func (e *Entry) Cell(d calendar.Day) CellStatus {
	return e.Cells[d]
}

// SetCell overwrites the status of one day.
func (e *Entry) SetCell(d calendar.Day, s CellStatus) {
	e.Cells[d] = s
}

// NewEntry builds a fresh entry with every cell W except the weekoff
// days, which are OFF. Leave codes cannot exist at creation time.
func NewEntry(login string, week int, shift string, weekoffs map[calendar.Day]bool) Entry {
	e := Entry{Login: login, Week: week, Shift: shift}
	for _, d := range calendar.Days {
		if weekoffs[d] {
			e.Cells[d] = StatusOff
		} else {
			e.Cells[d] = StatusWork
		}
	}
	return e
}
