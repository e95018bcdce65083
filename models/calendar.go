package models

import (
	"encoding/json"
	"fmt"
)

// Empty marks a Week slot that holds no day.
const Empty = 0

// Week is a fixed row of seven slots, Sunday first. A slot is either a day
// number or Empty.
type Week [7]int

// MarshalJSON encodes Empty slots as null.
func (w Week) MarshalJSON() ([]byte, error) {
	slots := make([]*int, len(w))
	for i := range w {
		if w[i] != Empty {
			day := w[i]
			slots[i] = &day
		}
	}
	return json.Marshal(slots)
}

func (w *Week) UnmarshalJSON(data []byte) error {
	var slots []*int
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	if len(slots) != len(w) {
		return fmt.Errorf("week must have %d slots, got %d", len(w), len(slots))
	}
	for i, s := range slots {
		w[i] = Empty
		if s != nil {
			w[i] = *s
		}
	}
	return nil
}

// CalendarGrid is a month laid out as Sunday-first weeks. Month is zero-based.
type CalendarGrid struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Weeks []Week `json:"weeks"`
}

// CalendarEvent is one entry of an ICS feed placed on its day of the month.
// Start is RFC 3339 in the dashboard time zone.
type CalendarEvent struct {
	Summary string `json:"summary"`
	Day     int    `json:"day"`
	Start   string `json:"start"`
}

// CalendarView is what the calendar widget renders: the grid plus the day to
// highlight (0 when today is outside the displayed month).
type CalendarView struct {
	Grid      CalendarGrid    `json:"grid"`
	MonthName string          `json:"monthName"`
	Today     int             `json:"today"`
	DayNames  []string        `json:"dayNames"`
	Events    []CalendarEvent `json:"events,omitempty"`
}
