package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"dashboard/models"
)

// ParseICS reads the VEVENTs of an iCalendar document. Events whose start
// cannot be parsed are skipped.
func ParseICS(r io.Reader, loc *time.Location) ([]models.CalendarEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var events []models.CalendarEvent
	for _, event := range cal.Events() {
		startAt, err := event.GetStartAt()
		if err != nil {
			startAt, err = event.GetAllDayStartAt()
			if err != nil {
				continue
			}
		}
		startAt = startAt.In(loc)

		var summary string
		if prop := event.GetProperty(ics.ComponentPropertySummary); prop != nil {
			summary = prop.Value
		}

		events = append(events, models.CalendarEvent{
			Summary: summary,
			Day:     startAt.Day(),
			Start:   startAt.Format(time.RFC3339),
		})
	}
	return events, nil
}

// FetchICS downloads and parses a public calendar feed.
func FetchICS(ctx context.Context, client *http.Client, url string, loc *time.Location) ([]models.CalendarEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch calendar feed: status %d", resp.StatusCode)
	}
	return ParseICS(resp.Body, loc)
}
