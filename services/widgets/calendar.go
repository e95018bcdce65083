package widgets

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"dashboard/models"
	"dashboard/services/calendar"
)

// CalendarSource renders the current month. When ICSURL is set, events from
// that feed are overlaid; a failing feed only drops the events.
type CalendarSource struct {
	Client   *http.Client
	ICSURL   string
	Now      func() time.Time
	Location *time.Location
	Logger   *zap.Logger
}

func NewCalendarSource(client *http.Client, icsURL string, now func() time.Time, loc *time.Location, logger *zap.Logger) *CalendarSource {
	return &CalendarSource{Client: client, ICSURL: icsURL, Now: now, Location: loc, Logger: logger}
}

func (s *CalendarSource) Name() string  { return "calendar" }
func (s *CalendarSource) Title() string { return "Calendar" }

func (s *CalendarSource) Fetch(ctx context.Context) (any, error) {
	var events []models.CalendarEvent
	if s.ICSURL != "" {
		var err error
		events, err = calendar.FetchICS(ctx, s.Client, s.ICSURL, s.Location)
		if err != nil {
			s.Logger.Warn("calendar feed unavailable", zap.String("url", s.ICSURL), zap.Error(err))
		}
	}
	return calendar.NewMonthView(s.Now().In(s.Location), events)
}

func (s *CalendarSource) Decode(data []byte) (any, error) {
	return decodeAs[models.CalendarView](data)
}
