package dashboard

import (
	"context"
	"errors"

	"dashboard/models"
)

var ErrUnknownWidget = errors.New("unknown widget")

// DashboardService is what the HTTP and queue layers use to read and refresh widgets.
type DashboardService interface {
	Refresh(ctx context.Context, name string) (models.WidgetState, error)
	State(name string) (models.WidgetState, error)
	Snapshot() []models.WidgetState
}
