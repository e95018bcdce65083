package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	HomeHandler            gin.HandlerFunc
	RefreshRedirectHandler gin.HandlerFunc

	// Widget API endpoints
	ListWidgetsHandler   gin.HandlerFunc
	GetWidgetHandler     gin.HandlerFunc
	RefreshWidgetHandler gin.HandlerFunc

	// Calendar API endpoints
	CalendarHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every endpoint of h into a bundle.
func NewHandlerBundle(h *DashboardHandler) *HandlerBundle {
	return &HandlerBundle{
		HomeHandler:            h.HomeHandler,
		RefreshRedirectHandler: h.RefreshRedirectHandler,
		ListWidgetsHandler:     h.ListWidgetsHandler,
		GetWidgetHandler:       h.GetWidgetHandler,
		RefreshWidgetHandler:   h.RefreshWidgetHandler,
		CalendarHandler:        h.CalendarHandler,
		HealthHandler:          h.HealthHandler,
	}
}
