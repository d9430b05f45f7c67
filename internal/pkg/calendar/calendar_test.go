package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekDates_2024Week1(t *testing.T) {
	// Jan 1 2024 is a Monday, so week 1 starts on Sunday Dec 31 2023.
	dates := WeekDates(1, 2024)

	if !dates[Sun].Equal(date(2023, time.December, 31)) {
		t.Errorf("WeekDates(1, 2024)[Sun] = %v, want 2023-12-31", dates[Sun])
	}
	if !dates[Mon].Equal(date(2024, time.January, 1)) {
		t.Errorf("WeekDates(1, 2024)[Mon] = %v, want 2024-01-01", dates[Mon])
	}
	if !dates[Sat].Equal(date(2024, time.January, 6)) {
		t.Errorf("WeekDates(1, 2024)[Sat] = %v, want 2024-01-06", dates[Sat])
	}
}

func TestWeekDates_JanFirstIsSunday(t *testing.T) {
	// Jan 1 2023 is itself a Sunday and must be week 1's Sunday.
	dates := WeekDates(1, 2023)
	if !dates[Sun].Equal(date(2023, time.January, 1)) {
		t.Errorf("WeekDates(1, 2023)[Sun] = %v, want 2023-01-01", dates[Sun])
	}
}

func TestWeekDates_Week1SundayOnOrBeforeJan1(t *testing.T) {
	for year := 2000; year <= 2030; year++ {
		jan1 := date(year, time.January, 1)
		sunday := WeekDates(1, year)[Sun]
		if sunday.After(jan1) {
			t.Errorf("year %d: week 1 Sunday %v is after Jan 1", year, sunday)
		}
		if sunday.Weekday() != time.Sunday {
			t.Errorf("year %d: week 1 starts on %v, want Sunday", year, sunday.Weekday())
		}
		if jan1.Sub(sunday) >= 7*24*time.Hour {
			t.Errorf("year %d: week 1 Sunday %v is not the latest Sunday on or before Jan 1", year, sunday)
		}
	}
}

func TestWeekDates_Deterministic(t *testing.T) {
	a := WeekDates(17, 2025)
	b := WeekDates(17, 2025)
	for _, d := range Days {
		if !a[d].Equal(b[d]) {
			t.Errorf("WeekDates(17, 2025) not deterministic for %s: %v vs %v", d, a[d], b[d])
		}
	}
}

func TestWeekFromDate_RoundTrip(t *testing.T) {
	years := []int{2023, 2024, 2025, 2026}
	for _, year := range years {
		for week := 1; week <= 52; week++ {
			wed := WeekDates(week, year)[Wed]
			// Wednesdays of valid weeks always fall inside the year.
			if wed.Year() != year {
				continue
			}
			if got := WeekFromDate(wed); got != week {
				t.Errorf("WeekFromDate(WeekDates(%d, %d)[Wed]) = %d, want %d", week, year, got, week)
			}
		}
	}
}

func TestWeekFromDate_ConsecutiveDates(t *testing.T) {
	// Walking a whole year day by day must only ever step the week number
	// up by one, on Sundays.
	prev := WeekFromDate(date(2024, time.January, 1))
	d := date(2024, time.January, 2)
	for d.Year() == 2024 {
		w := WeekFromDate(d)
		if w < prev || w > prev+1 {
			t.Fatalf("week number jumped from %d to %d at %v", prev, w, d)
		}
		if w == prev+1 && d.Weekday() != time.Sunday {
			t.Fatalf("week number advanced on %v (%v), want Sunday", d, d.Weekday())
		}
		prev = w
		d = d.AddDate(0, 0, 1)
	}
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		token string
		want  Day
		ok    bool
	}{
		{"Sun", Sun, true},
		{"sun", Sun, true},
		{" sat ", Sat, true},
		{"WED", Wed, true},
		{"Sunday", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseDay(c.token)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseDay(%q) = %v, %v, want %v", c.token, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseDay(%q) succeeded, want error", c.token)
		}
	}
}

func TestDayColumn(t *testing.T) {
	if Mon.Column() != "mon" {
		t.Errorf("Mon.Column() = %q, want %q", Mon.Column(), "mon")
	}
	if Sun.String() != "Sun" {
		t.Errorf("Sun.String() = %q, want %q", Sun.String(), "Sun")
	}
}
