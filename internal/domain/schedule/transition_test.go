package schedule

import (
	"errors"
	"testing"
)

func TestCodeLeave(t *testing.T) {
	cases := []struct {
		name    string
		current CellStatus
		code    CellStatus
		want    CellStatus
		wantErr error
	}{
		{"work day accepts AL", StatusWork, LeaveAnnual, LeaveAnnual, nil},
		{"work day accepts SL", StatusWork, LeaveSick, LeaveSick, nil},
		{"work day accepts CL", StatusWork, LeaveCasual, LeaveCasual, nil},
		{"work day accepts L", StatusWork, LeaveGeneric, LeaveGeneric, nil},
		{"off day rejected", StatusOff, LeaveAnnual, StatusOff, ErrDayNotWorkable},
		{"already coded rejected", LeaveSick, LeaveAnnual, LeaveSick, ErrDayAlreadyCoded},
		{"recoding same type rejected", LeaveAnnual, LeaveAnnual, LeaveAnnual, ErrDayAlreadyCoded},
		{"bogus leave type rejected", StatusWork, CellStatus("XX"), StatusWork, ErrInvalidLeaveType},
		{"OFF is not a leave type", StatusWork, StatusOff, StatusWork, ErrInvalidLeaveType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CodeLeave(c.current, c.code)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("CodeLeave(%q, %q) error = %v, want %v", c.current, c.code, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("CodeLeave(%q, %q) = %q, want %q", c.current, c.code, got, c.want)
			}
		})
	}
}

func TestDeleteLeave(t *testing.T) {
	for _, code := range LeaveCodes {
		got, err := DeleteLeave(code)
		if err != nil {
			t.Errorf("DeleteLeave(%q) error = %v, want nil", code, err)
		}
		if got != StatusWork {
			t.Errorf("DeleteLeave(%q) = %q, want W", code, got)
		}
	}

	for _, current := range []CellStatus{StatusWork, StatusOff} {
		got, err := DeleteLeave(current)
		if !errors.Is(err, ErrNoLeaveToDelete) {
			t.Errorf("DeleteLeave(%q) error = %v, want ErrNoLeaveToDelete", current, err)
		}
		if got != current {
			t.Errorf("DeleteLeave(%q) changed cell to %q, want unchanged", current, got)
		}
	}
}

func TestCodeThenDeleteRoundTrip(t *testing.T) {
	coded, err := CodeLeave(StatusWork, LeaveCasual)
	if err != nil {
		t.Fatalf("CodeLeave: %v", err)
	}
	back, err := DeleteLeave(coded)
	if err != nil {
		t.Fatalf("DeleteLeave: %v", err)
	}
	if back != StatusWork {
		t.Errorf("code then delete = %q, want W", back)
	}
}

func TestApplyStatus(t *testing.T) {
	// Resetting to W is an unguarded override from any state.
	for _, current := range []CellStatus{StatusWork, StatusOff, LeaveAnnual, LeaveGeneric} {
		got, err := ApplyStatus(current, StatusWork)
		if err != nil || got != StatusWork {
			t.Errorf("ApplyStatus(%q, W) = %q, %v, want W, nil", current, got, err)
		}
	}

	// Setting a leave code shares the coding guard.
	if got, err := ApplyStatus(StatusWork, LeaveGeneric); err != nil || got != LeaveGeneric {
		t.Errorf("ApplyStatus(W, L) = %q, %v, want L, nil", got, err)
	}
	if _, err := ApplyStatus(StatusOff, LeaveGeneric); !errors.Is(err, ErrDayNotWorkable) {
		t.Errorf("ApplyStatus(OFF, L) error = %v, want ErrDayNotWorkable", err)
	}
	if _, err := ApplyStatus(LeaveAnnual, LeaveGeneric); !errors.Is(err, ErrDayAlreadyCoded) {
		t.Errorf("ApplyStatus(AL, L) error = %v, want ErrDayAlreadyCoded", err)
	}
}

func TestNewEntryWeekoffs(t *testing.T) {
	req := CreateScheduleRequest{
		Logins:   []string{"csa1"},
		Weeks:    []int{5},
		Year:     2024,
		Shift:    "morning",
		Weekoffs: []string{"sun", "sat"},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	e := NewEntry("csa1", 5, "morning", req.WeekoffDays())

	want := map[string]CellStatus{
		"Sun": StatusOff, "Sat": StatusOff,
		"Mon": StatusWork, "Tue": StatusWork, "Wed": StatusWork,
		"Thu": StatusWork, "Fri": StatusWork,
	}
	for i, cell := range e.Cells {
		token := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}[i]
		if cell != want[token] {
			t.Errorf("cell %s = %q, want %q", token, cell, want[token])
		}
	}
}

func TestCreateScheduleRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  CreateScheduleRequest
		ok   bool
	}{
		{"valid", CreateScheduleRequest{Logins: []string{"csa1"}, Weeks: []int{1}, Year: 2024}, true},
		{"empty logins", CreateScheduleRequest{Weeks: []int{1}, Year: 2024}, false},
		{"blank login", CreateScheduleRequest{Logins: []string{" "}, Weeks: []int{1}, Year: 2024}, false},
		{"no weeks", CreateScheduleRequest{Logins: []string{"csa1"}, Year: 2024}, false},
		{"week zero", CreateScheduleRequest{Logins: []string{"csa1"}, Weeks: []int{0}, Year: 2024}, false},
		{"week out of range", CreateScheduleRequest{Logins: []string{"csa1"}, Weeks: []int{55}, Year: 2024}, false},
		{"bad year", CreateScheduleRequest{Logins: []string{"csa1"}, Weeks: []int{1}, Year: 0}, false},
		{"bad weekoff", CreateScheduleRequest{Logins: []string{"csa1"}, Weeks: []int{1}, Year: 2024, Weekoffs: []string{"sunday"}}, false},
		{"lowercase weekoffs ok", CreateScheduleRequest{Logins: []string{"csa1"}, Weeks: []int{1}, Year: 2024, Weekoffs: []string{"sun", "sat"}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !c.ok && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}
