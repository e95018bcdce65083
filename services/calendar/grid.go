// Package calendar lays out months as Sunday-first week grids.
//
// Months are zero-based (0 = January) throughout the package. Out of range
// months are rejected with ErrInvalidArgument, never normalized.
package calendar

import (
	"time"

	"dashboard/models"
)

const daysPerWeek = 7

func checkMonth(month int) error {
	if month < 0 || month > 11 {
		return newMonthError(month)
	}
	return nil
}

// DaysInMonth returns the length of month in year under the proleptic
// Gregorian calendar.
func DaysInMonth(year, month int) (int, error) {
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// FirstWeekday returns the weekday of the 1st of the month, 0 = Sunday.
func FirstWeekday(year, month int) (int, error) {
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday()), nil
}

// Build lays out the month as ceil((offset+n)/7) weeks. Slots before the 1st
// and after the last day are models.Empty.
func Build(year, month int) (models.CalendarGrid, error) {
	n, err := DaysInMonth(year, month)
	if err != nil {
		return models.CalendarGrid{}, err
	}
	offset, err := FirstWeekday(year, month)
	if err != nil {
		return models.CalendarGrid{}, err
	}

	weeks := make([]models.Week, 0, (offset+n+daysPerWeek-1)/daysPerWeek)

	var first models.Week
	day := 1
	for i := offset; i < daysPerWeek && day <= n; i++ {
		first[i] = day
		day++
	}
	weeks = append(weeks, first)

	for day <= n {
		var week models.Week
		for i := 0; i < daysPerWeek && day <= n; i++ {
			week[i] = day
			day++
		}
		weeks = append(weeks, week)
	}

	return models.CalendarGrid{Year: year, Month: month, Weeks: weeks}, nil
}
