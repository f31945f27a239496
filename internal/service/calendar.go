package service

import (
	"time"

	"focustrack/internal/model"
)

// DueDateLayout is the only due date format placed on the calendar.
const DueDateLayout = "2006-01-02"

// CalendarOptions controls the grid shape.
type CalendarOptions struct {
	FirstWeekday time.Weekday
	SixWeeks     bool // pad short months to six rows
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date    string       `json:"date"`
	Day     int          `json:"day"`
	InMonth bool         `json:"in_month"`
	IsToday bool         `json:"is_today"`
	Tasks   []model.Task `json:"tasks"`
}

// MonthRef names a month.
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Calendar is the month view.
type Calendar struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	MonthName string          `json:"month_name"`
	Weekdays  []string        `json:"weekdays"`
	Weeks     [][]CalendarDay `json:"weeks"`
	Prev      MonthRef        `json:"prev"`
	Next      MonthRef        `json:"next"`
}

// BuildCalendar lays out year/month as rows of seven days starting on opts.FirstWeekday,
// with leading and trailing days from the neighbouring months. Tasks whose due date
// does not parse are left off the grid.
func BuildCalendar(year int, month time.Month, tasks []model.Task, today time.Time, opts CalendarOptions) Calendar {
	byDate := make(map[string][]model.Task)
	for _, t := range tasks {
		due, err := time.Parse(DueDateLayout, t.DueDate)
		if err != nil {
			continue
		}
		key := due.Format(DueDateLayout)
		byDate[key] = append(byDate[key], t)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	lead := (int(first.Weekday()) - int(opts.FirstWeekday) + 7) % 7
	start := first.AddDate(0, 0, -lead)

	weeks := (lead + last.Day() + 6) / 7
	if opts.SixWeeks {
		weeks = 6
	}

	todayKey := today.Format(DueDateLayout)
	cal := Calendar{
		Year:      year,
		Month:     int(month),
		MonthName: month.String(),
		Weekdays:  weekdayNames(opts.FirstWeekday),
		Weeks:     make([][]CalendarDay, 0, weeks),
	}
	cal.Prev, cal.Next = AdjacentMonths(year, month)

	day := start
	for w := 0; w < weeks; w++ {
		row := make([]CalendarDay, 7)
		for i := range row {
			key := day.Format(DueDateLayout)
			row[i] = CalendarDay{
				Date:    key,
				Day:     day.Day(),
				InMonth: day.Month() == month,
				IsToday: key == todayKey,
				Tasks:   byDate[key],
			}
			day = day.AddDate(0, 0, 1)
		}
		cal.Weeks = append(cal.Weeks, row)
	}
	return cal
}

// AdjacentMonths returns the months before and after year/month.
func AdjacentMonths(year int, month time.Month) (prev, next MonthRef) {
	prev = MonthRef{Year: year, Month: int(month) - 1}
	if month == time.January {
		prev = MonthRef{Year: year - 1, Month: 12}
	}
	next = MonthRef{Year: year, Month: int(month) + 1}
	if month == time.December {
		next = MonthRef{Year: year + 1, Month: 1}
	}
	return prev, next
}

func weekdayNames(first time.Weekday) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(first) + i) % 7).String()[:3]
	}
	return names
}
