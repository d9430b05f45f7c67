// Package calendar maps between US-style week numbers and calendar dates.
// Week 1 is the week containing January 1; weeks start on Sunday. If
// January 1 is not a Sunday, week 1 starts on the Sunday before it.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Day identifies one column of a weekly schedule, Sunday first.
type Day int

const (
	Sun Day = iota
	Mon
	Tue
	Wed
	Thu
	Fri
	Sat
)

var dayTokens = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Days lists all seven days in week order.
var Days = [7]Day{Sun, Mon, Tue, Wed, Thu, Fri, Sat}

func (d Day) String() string {
	if d < Sun || d > Sat {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayTokens[d]
}

// Column returns the schedule table column name for the day.
func (d Day) Column() string {
	return strings.ToLower(d.String())
}

// ParseDay parses a day token. Matching is case-insensitive so both the
// display form ("Sun") and the weekoff form ("sun") are accepted.
func ParseDay(token string) (Day, error) {
	for i, t := range dayTokens {
		if strings.EqualFold(strings.TrimSpace(token), t) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("invalid day token %q", token)
}

// firstSunday returns the Sunday on or before January 1 of year.
func firstSunday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, -int(jan1.Weekday()))
}

// WeekDates returns the seven dates of the given week, Sunday first.
// Valid for any positive week number; the caller supplies the year the
// week number is relative to.
func WeekDates(week, year int) [7]time.Time {
	sunday := firstSunday(year).AddDate(0, 0, (week-1)*7)
	var dates [7]time.Time
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

// WeekFromDate returns the week number of a date, relative to the date's
// own year. A caller holding a (week, year) pair from elsewhere must pass
// dates of that same year for the numbers to agree.
func WeekFromDate(date time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(d.Sub(firstSunday(date.Year())).Hours()) / 24
	return diff/7 + 1
}
