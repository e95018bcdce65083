package routes

import (
	"net/http"
	"time"

	"dashboard/handlers"
	"dashboard/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the HTML page, its refresh buttons and static assets.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)
	r.POST("/widgets/:name/refresh", hb.RefreshRedirectHandler)
	r.StaticFS("/static", http.FS(views.StaticFS()))
}

// RegisterWidgetRoutes registers the widget JSON API.
func RegisterWidgetRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	widgets := api.Group("/widgets")
	{
		widgets.GET("", hb.ListWidgetsHandler)
		widgets.GET("/:name", hb.GetWidgetHandler)
		widgets.POST("/:name/refresh", hb.RefreshWidgetHandler)
	}
}

// RegisterCalendarRoutes registers the calendar grid endpoint.
func RegisterCalendarRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/calendar", hb.CalendarHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r, hb)

	// The JSON API is readable from other origins; the page is not.
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	RegisterWidgetRoutes(api, hb)
	RegisterCalendarRoutes(api, hb)
}
