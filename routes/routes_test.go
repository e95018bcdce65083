package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard/handlers"
	"dashboard/models"
	"dashboard/views"

	"github.com/gin-gonic/gin"
)

type emptyDashboard struct{}

func (emptyDashboard) Refresh(ctx context.Context, name string) (models.WidgetState, error) {
	return models.WidgetState{Name: name, Status: models.StatusReady}, nil
}

func (emptyDashboard) State(name string) (models.WidgetState, error) {
	return models.WidgetState{Name: name, Status: models.StatusLoading}, nil
}

func (emptyDashboard) Snapshot() []models.WidgetState { return nil }

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager, err := views.NewManager()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	r := gin.New()
	RegisterRoutes(r, handlers.NewHandlerBundle(handlers.NewDashboardHandler(emptyDashboard{}, manager, 0, nil)))

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/static/dashboard.css", http.StatusOK},
		{http.MethodPost, "/widgets/joke/refresh", http.StatusSeeOther},
		{http.MethodGet, "/api/widgets", http.StatusOK},
		{http.MethodGet, "/api/widgets/price", http.StatusOK},
		{http.MethodPost, "/api/widgets/price/refresh", http.StatusOK},
		{http.MethodGet, "/api/calendar", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
		if w.Code != tt.want {
			t.Errorf("%s %s: got=%d, want=%d", tt.method, tt.target, w.Code, tt.want)
		}
	}
}

func TestAPICORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager, err := views.NewManager()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	r := gin.New()
	RegisterRoutes(r, handlers.NewHandlerBundle(handlers.NewDashboardHandler(emptyDashboard{}, manager, 0, nil)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/widgets", nil)
	req.Header.Set("Origin", "http://other.test")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
}
