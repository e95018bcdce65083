package calendar

import (
	"time"

	"dashboard/models"
)

// DayNames is the Sunday-first weekday header.
var DayNames = []string{"S", "M", "T", "W", "T", "F", "S"}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthName returns the French name of a zero-based month, or "" when out of range.
func MonthName(month int) string {
	if checkMonth(month) != nil {
		return ""
	}
	return frenchMonths[month]
}

// NewMonthView builds the grid for now's month and marks now's day as today.
// Only events that fall inside that month are kept.
func NewMonthView(now time.Time, events []models.CalendarEvent) (models.CalendarView, error) {
	year, month, day := now.Date()
	grid, err := Build(year, int(month)-1)
	if err != nil {
		return models.CalendarView{}, err
	}

	return models.CalendarView{
		Grid:      grid,
		MonthName: MonthName(int(month) - 1),
		Today:     day,
		DayNames:  DayNames,
		Events:    eventsInMonth(events, year, int(month)-1),
	}, nil
}

func eventsInMonth(events []models.CalendarEvent, year, month int) []models.CalendarEvent {
	var kept []models.CalendarEvent
	for _, e := range events {
		start, err := time.Parse(time.RFC3339, e.Start)
		if err != nil {
			continue
		}
		if start.Year() == year && int(start.Month())-1 == month {
			kept = append(kept, e)
		}
	}
	return kept
}

// IsToday reports whether the slot holds the highlighted day.
func IsToday(view models.CalendarView, day int) bool {
	return day != models.Empty && day == view.Today
}

// HasEvent reports whether any event falls on day.
func HasEvent(view models.CalendarView, day int) bool {
	for _, e := range view.Events {
		if e.Day == day {
			return true
		}
	}
	return false
}
