package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"dashboard/models"
	"dashboard/services/calendar"
)

func renderHome(t *testing.T, widgets []models.WidgetState) string {
	t.Helper()
	m, err := NewManager()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	var buf bytes.Buffer
	if err := m.RenderPage(&buf, PageHome, NewData(widgets)); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return buf.String()
}

func TestRenderHome_States(t *testing.T) {
	out := renderHome(t, []models.WidgetState{
		{Name: "price", Title: "Bitcoin Price", Status: models.StatusLoading},
		{Name: "joke", Title: "Developer Joke", Status: models.StatusError, Error: "Failed to fetch joke"},
		{Name: "quote", Title: "Quote of the Day", Status: models.StatusReady, Fallback: true,
			Data: models.QuoteData{Content: "Innovation distinguishes between a leader and a follower.", Author: "Steve Jobs"}},
	})

	for _, want := range []string{
		"Tech &amp; Business Daily Dashboard",
		"Loading bitcoin price...",
		"Failed to fetch joke",
		`action="/widgets/joke/refresh"`,
		"Innovation distinguishes",
		"Steve Jobs",
		"Showing default content.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRenderHome_Calendar(t *testing.T) {
	view, err := calendar.NewMonthView(time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC), nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	out := renderHome(t, []models.WidgetState{
		{Name: "calendar", Title: "Calendar", Status: models.StatusReady, Data: view},
	})

	if !strings.Contains(out, "février 2024") {
		t.Errorf("expected month heading")
	}
	if !strings.Contains(out, `<td class="today">14</td>`) {
		t.Errorf("expected today highlight in output")
	}
	if got := strings.Count(out, `<td class="empty"></td>`); got != 6 {
		t.Errorf("expected 6 empty slots, got %d", got)
	}
}

func TestRenderHome_AllWidgets(t *testing.T) {
	out := renderHome(t, []models.WidgetState{
		{Name: "price", Title: "Bitcoin Price", Status: models.StatusReady,
			Data: models.PriceData{USD: models.PriceQuote{Rate: "65,432.1"}, EUR: models.PriceQuote{Rate: "60,123"}, Updated: "Fri, 02 Feb 2024 08:30:15 GMT"}},
		{Name: "weather", Title: "Weather", Status: models.StatusReady,
			Data: models.WeatherData{Location: "Paris", Temperature: "22°C", Description: "Sunny", Icon: "☀️"}},
		{Name: "nameday", Title: "Name Day", Status: models.StatusReady,
			Data: models.NameDayData{Name: "Sainte Présentation", Date: "2 février 2024"}},
		{Name: "joke", Title: "Developer Joke", Status: models.StatusReady, Data: models.JokeData{Joke: "A joke"}},
		{Name: "clock", Title: "Current Date & Time", Status: models.StatusReady,
			Data: models.ClockData{Date: "vendredi 2 février 2024", Time: "09:30:15"}},
		{Name: "image", Title: "Tech Inspiration", Status: models.StatusReady,
			Data: models.ImageData{URL: "https://example.com/a.jpg", Alt: "Tech & Startup Inspiration"}},
	})

	for _, want := range []string{
		"$65,432.1",
		"€60,123",
		"Paris",
		"Sainte Présentation",
		"Get Another Joke",
		"09:30:15",
		`src="https://example.com/a.jpg"`,
		`action="/widgets/image/refresh"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRenderPartial(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	var buf bytes.Buffer
	state := models.WidgetState{Name: "joke", Title: "Developer Joke", Status: models.StatusReady, Data: models.JokeData{Joke: "ha"}}
	if err := m.RenderPartial(&buf, "widget", state); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(buf.String(), "ha") {
		t.Fatalf("expected joke in partial output")
	}
	if err := m.RenderPartial(&buf, "missing", nil); err == nil {
		t.Fatalf("expected error for missing partial")
	}
}

func TestSince(t *testing.T) {
	if got := since(time.Time{}); got != "never" {
		t.Fatalf("expected never, got %q", got)
	}
	if got := since(time.Now().Add(-3 * time.Second)); !strings.HasSuffix(got, "s ago") {
		t.Fatalf("unexpected since output %q", got)
	}
}
