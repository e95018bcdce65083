package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dashboard/services/calendar"
	"dashboard/services/dashboard"
	"dashboard/utils"
	"dashboard/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the dashboard page and the widget JSON API.
type DashboardHandler struct {
	Svc   dashboard.DashboardService
	Views *views.Manager

	// RefreshSeconds is written into the page as a meta refresh; zero disables it.
	RefreshSeconds int
	Now            func() time.Time

	// LiveWidgets are refreshed on every page render, e.g. the clock, so the
	// page shows request-time values rather than the last tick.
	LiveWidgets []string
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(svc dashboard.DashboardService, manager *views.Manager, refreshSeconds int, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{
		Svc:            svc,
		Views:          manager,
		RefreshSeconds: refreshSeconds,
		Now:            now,
	}
}

// HomeHandler renders the full page with every widget in its current state.
func (h *DashboardHandler) HomeHandler(c *gin.Context) {
	logger := getLogger(c)

	for _, name := range h.LiveWidgets {
		if _, err := h.Svc.Refresh(c.Request.Context(), name); err != nil {
			logger.Debug("live widget not refreshed", zap.String("widget", name), zap.Error(err))
		}
	}

	data := views.NewData(h.Svc.Snapshot())
	data.RefreshSeconds = h.RefreshSeconds

	var buf bytes.Buffer
	if err := h.Views.RenderPage(&buf, views.PageHome, data); err != nil {
		logger.Error("render home page", zap.Error(err))
		h.renderError(c)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *DashboardHandler) renderError(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Views.RenderPage(&buf, views.Page500, views.NewData(nil)); err != nil {
		getLogger(c).Error("render error page", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", buf.Bytes())
}

// RefreshRedirectHandler backs the refresh buttons on the page: it refreshes
// one widget and sends the browser back to the dashboard.
func (h *DashboardHandler) RefreshRedirectHandler(c *gin.Context) {
	name := c.Param("name")
	if _, err := h.Svc.Refresh(c.Request.Context(), name); err != nil {
		if errors.Is(err, dashboard.ErrUnknownWidget) {
			utils.JSONError(c, http.StatusNotFound, "unknown widget", name)
			return
		}
		getLogger(c).Error("refresh widget", zap.String("widget", name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to refresh widget", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *DashboardHandler) ListWidgetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Snapshot())
}

func (h *DashboardHandler) GetWidgetHandler(c *gin.Context) {
	name := c.Param("name")
	state, err := h.Svc.State(name)
	if err != nil {
		if errors.Is(err, dashboard.ErrUnknownWidget) {
			utils.JSONError(c, http.StatusNotFound, "unknown widget", name)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to read widget", err.Error())
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *DashboardHandler) RefreshWidgetHandler(c *gin.Context) {
	name := c.Param("name")
	state, err := h.Svc.Refresh(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, dashboard.ErrUnknownWidget) {
			utils.JSONError(c, http.StatusNotFound, "unknown widget", name)
			return
		}
		getLogger(c).Error("refresh widget", zap.String("widget", name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to refresh widget", err.Error())
		return
	}
	c.JSON(http.StatusOK, state)
}

// CalendarHandler returns the grid for ?year=&month= (month zero-based).
// Missing parameters default to the current year and month.
func (h *DashboardHandler) CalendarHandler(c *gin.Context) {
	now := h.Now()
	year, month := now.Year(), int(now.Month())-1

	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "InvalidArgument", "year must be an integer")
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "InvalidArgument", "month must be an integer")
			return
		}
		month = n
	}

	grid, err := calendar.Build(year, month)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidArgument) {
			utils.JSONError(c, http.StatusBadRequest, "InvalidArgument", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to build calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, grid)
}

func (h *DashboardHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
