package widgets

import (
	"context"
	"time"

	"dashboard/models"
)

// ClockSource reports the wall clock in a fixed time zone.
type ClockSource struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClockSource(now func() time.Time, loc *time.Location) *ClockSource {
	return &ClockSource{Now: now, Location: loc}
}

func (s *ClockSource) Name() string  { return "clock" }
func (s *ClockSource) Title() string { return "Current Date & Time" }

func (s *ClockSource) Fetch(ctx context.Context) (any, error) {
	now := s.Now().In(s.Location)
	return models.ClockData{
		Date:     FormatFullDate(now),
		Time:     FormatClock(now),
		TimeZone: s.Location.String(),
	}, nil
}

func (s *ClockSource) Decode(data []byte) (any, error) {
	return decodeAs[models.ClockData](data)
}
