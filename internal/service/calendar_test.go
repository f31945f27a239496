package service

import (
	"testing"
	"time"

	"focustrack/internal/model"
)

func TestBuildCalendarWeeksCoverMonth(t *testing.T) {
	today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	monday := CalendarOptions{FirstWeekday: time.Monday}
	sunday := CalendarOptions{FirstWeekday: time.Sunday}

	cases := []struct {
		name  string
		year  int
		month time.Month
		opts  CalendarOptions
		weeks int
		first string
		last  string
	}{
		// February 2027 starts on a Monday and has 28 days.
		{"four weeks", 2027, time.February, monday, 4, "2027-02-01", "2027-02-28"},
		{"five weeks", 2026, time.October, monday, 5, "2026-09-28", "2026-11-01"},
		// August 2026 starts on a Saturday and has 31 days.
		{"six weeks", 2026, time.August, monday, 6, "2026-07-27", "2026-09-06"},
		{"sunday start", 2026, time.October, sunday, 5, "2026-09-27", "2026-10-31"},
		{"padded", 2027, time.February, CalendarOptions{FirstWeekday: time.Monday, SixWeeks: true}, 6, "2027-02-01", "2027-03-14"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cal := BuildCalendar(tc.year, tc.month, nil, today, tc.opts)
			if len(cal.Weeks) != tc.weeks {
				t.Fatalf("got %d weeks, want %d", len(cal.Weeks), tc.weeks)
			}
			for i, week := range cal.Weeks {
				if len(week) != 7 {
					t.Fatalf("week %d has %d days", i, len(week))
				}
			}
			if got := cal.Weeks[0][0].Date; got != tc.first {
				t.Fatalf("first cell %s, want %s", got, tc.first)
			}
			lastWeek := cal.Weeks[len(cal.Weeks)-1]
			if got := lastWeek[6].Date; got != tc.last {
				t.Fatalf("last cell %s, want %s", got, tc.last)
			}
			if cal.Weekdays[0] != tc.opts.FirstWeekday.String()[:3] {
				t.Fatalf("unexpected weekday header %v", cal.Weekdays)
			}
		})
	}
}

func TestBuildCalendarGroupsTasksByDueDate(t *testing.T) {
	today := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: 1, DueDate: "2026-10-16"},
		{ID: 2, DueDate: "2026-10-16"},
		{ID: 3, DueDate: "next tuesday"},
		{ID: 4, DueDate: ""},
		{ID: 5, DueDate: "2026-11-01"},
	}

	cal := BuildCalendar(2026, time.October, tasks, today, CalendarOptions{FirstWeekday: time.Monday})

	placed := 0
	for _, week := range cal.Weeks {
		for _, day := range week {
			placed += len(day.Tasks)
			switch day.Date {
			case "2026-10-16":
				if len(day.Tasks) != 2 || !day.IsToday || !day.InMonth {
					t.Fatalf("unexpected cell %+v", day)
				}
			case "2026-11-01":
				if len(day.Tasks) != 1 || day.InMonth {
					t.Fatalf("trailing day should carry its task and be outside the month: %+v", day)
				}
			}
		}
	}
	if placed != 3 {
		t.Fatalf("expected 3 tasks on the grid, got %d", placed)
	}
}

func TestAdjacentMonthsRollOver(t *testing.T) {
	prev, next := AdjacentMonths(2026, time.December)
	if prev != (MonthRef{Year: 2026, Month: 11}) || next != (MonthRef{Year: 2027, Month: 1}) {
		t.Fatalf("december: prev %+v next %+v", prev, next)
	}
	prev, next = AdjacentMonths(2026, time.January)
	if prev != (MonthRef{Year: 2025, Month: 12}) || next != (MonthRef{Year: 2026, Month: 2}) {
		t.Fatalf("january: prev %+v next %+v", prev, next)
	}

	cal := BuildCalendar(2026, time.December, nil, time.Now(), CalendarOptions{})
	if cal.Next.Year != 2027 || cal.Next.Month != 1 || cal.MonthName != "December" {
		t.Fatalf("unexpected calendar header %+v", cal)
	}
}
