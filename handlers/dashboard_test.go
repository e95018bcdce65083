package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dashboard/models"
	"dashboard/services/dashboard"
	"dashboard/views"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeDashboard struct {
	states    map[string]models.WidgetState
	refreshed []string
}

func newFakeDashboard() *fakeDashboard {
	return &fakeDashboard{states: map[string]models.WidgetState{
		"joke": {
			Name:   "joke",
			Title:  "Dad Joke",
			Status: models.StatusReady,
			Data:   models.JokeData{ID: "1", Joke: "I used to hate facial hair, but then it grew on me."},
		},
	}}
}

func (f *fakeDashboard) Refresh(ctx context.Context, name string) (models.WidgetState, error) {
	s, ok := f.states[name]
	if !ok {
		return models.WidgetState{}, fmt.Errorf("%w: %q", dashboard.ErrUnknownWidget, name)
	}
	f.refreshed = append(f.refreshed, name)
	return s, nil
}

func (f *fakeDashboard) State(name string) (models.WidgetState, error) {
	s, ok := f.states[name]
	if !ok {
		return models.WidgetState{}, fmt.Errorf("%w: %q", dashboard.ErrUnknownWidget, name)
	}
	return s, nil
}

func (f *fakeDashboard) Snapshot() []models.WidgetState {
	return []models.WidgetState{f.states["joke"]}
}

func newTestRouter(t *testing.T, svc dashboard.DashboardService) *gin.Engine {
	t.Helper()
	manager, err := views.NewManager()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	now := func() time.Time { return time.Date(2024, time.February, 14, 9, 0, 0, 0, time.UTC) }
	hb := NewHandlerBundle(NewDashboardHandler(svc, manager, 60, now))

	r := gin.New()
	r.GET("/", hb.HomeHandler)
	r.POST("/widgets/:name/refresh", hb.RefreshRedirectHandler)
	r.GET("/api/widgets", hb.ListWidgetsHandler)
	r.GET("/api/widgets/:name", hb.GetWidgetHandler)
	r.POST("/api/widgets/:name/refresh", hb.RefreshWidgetHandler)
	r.GET("/api/calendar", hb.CalendarHandler)
	r.GET("/health", hb.HealthHandler)
	return r
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHomeHandler(t *testing.T) {
	r := newTestRouter(t, newFakeDashboard())

	w := serve(r, http.MethodGet, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "grew on me") {
		t.Fatalf("expected joke in page, got %s", body)
	}
	if !strings.Contains(body, `content="60"`) {
		t.Fatalf("expected meta refresh in page")
	}
}

func TestHomeHandler_LiveWidgets(t *testing.T) {
	manager, err := views.NewManager()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	svc := newFakeDashboard()
	h := NewDashboardHandler(svc, manager, 0, nil)
	h.LiveWidgets = []string{"joke", "missing"}

	r := gin.New()
	r.GET("/", h.HomeHandler)

	w := serve(r, http.MethodGet, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(svc.refreshed) != 1 || svc.refreshed[0] != "joke" {
		t.Fatalf("expected joke refreshed at render time, got %v", svc.refreshed)
	}
}

func TestRefreshRedirectHandler(t *testing.T) {
	svc := newFakeDashboard()
	r := newTestRouter(t, svc)

	w := serve(r, http.MethodPost, "/widgets/joke/refresh")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if len(svc.refreshed) != 1 || svc.refreshed[0] != "joke" {
		t.Fatalf("unexpected refreshes %v", svc.refreshed)
	}

	w = serve(r, http.MethodPost, "/widgets/nope/refresh")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWidgetAPI(t *testing.T) {
	r := newTestRouter(t, newFakeDashboard())

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/api/widgets", http.StatusOK},
		{http.MethodGet, "/api/widgets/joke", http.StatusOK},
		{http.MethodGet, "/api/widgets/nope", http.StatusNotFound},
		{http.MethodPost, "/api/widgets/joke/refresh", http.StatusOK},
		{http.MethodPost, "/api/widgets/nope/refresh", http.StatusNotFound},
		{http.MethodGet, "/health", http.StatusOK},
	}
	for _, tt := range tests {
		w := serve(r, tt.method, tt.target)
		if w.Code != tt.want {
			t.Errorf("%s %s: got=%d, want=%d", tt.method, tt.target, w.Code, tt.want)
		}
	}
}

func TestGetWidgetHandler_Body(t *testing.T) {
	r := newTestRouter(t, newFakeDashboard())

	w := serve(r, http.MethodGet, "/api/widgets/joke")
	var state struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Data   struct {
			Joke string `json:"joke"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if state.Name != "joke" || state.Status != "ready" || state.Data.Joke == "" {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestCalendarHandler(t *testing.T) {
	r := newTestRouter(t, newFakeDashboard())

	tests := []struct {
		target    string
		want      int
		wantYear  int
		wantMonth int
	}{
		{"/api/calendar", http.StatusOK, 2024, 1},
		{"/api/calendar?year=2023&month=0", http.StatusOK, 2023, 0},
		{"/api/calendar?month=11", http.StatusOK, 2024, 11},
		{"/api/calendar?year=2024&month=12", http.StatusBadRequest, 0, 0},
		{"/api/calendar?year=2024&month=-1", http.StatusBadRequest, 0, 0},
		{"/api/calendar?month=feb", http.StatusBadRequest, 0, 0},
		{"/api/calendar?year=x", http.StatusBadRequest, 0, 0},
	}
	for _, tt := range tests {
		w := serve(r, http.MethodGet, tt.target)
		if w.Code != tt.want {
			t.Errorf("input=%v, got=%d, want=%d", tt.target, w.Code, tt.want)
			continue
		}
		if tt.want != http.StatusOK {
			continue
		}
		var grid models.CalendarGrid
		if err := json.Unmarshal(w.Body.Bytes(), &grid); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if grid.Year != tt.wantYear || grid.Month != tt.wantMonth {
			t.Errorf("input=%v, got=%d/%d, want=%d/%d", tt.target, grid.Year, grid.Month, tt.wantYear, tt.wantMonth)
		}
		if len(grid.Weeks) == 0 {
			t.Errorf("input=%v, expected weeks", tt.target)
		}
	}
}

func TestCalendarHandler_FebruaryLeap(t *testing.T) {
	r := newTestRouter(t, newFakeDashboard())

	w := serve(r, http.MethodGet, "/api/calendar?year=2024&month=1")
	var grid models.CalendarGrid
	if err := json.Unmarshal(w.Body.Bytes(), &grid); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	// Feb 1 2024 is a Thursday.
	first := grid.Weeks[0]
	if first[3] != models.Empty || first[4] != 1 {
		t.Fatalf("unexpected first week %v", first)
	}
	last := grid.Weeks[len(grid.Weeks)-1]
	if last[4] != 29 {
		t.Fatalf("unexpected last week %v", last)
	}
}
