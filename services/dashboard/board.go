// Package dashboard keeps one isolated state cell per widget and refreshes
// each of them independently.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"dashboard/models"
	"dashboard/services/widgets"
)

// Widget registers a source on the board. Interval zero means the widget is
// only fetched at startup and on explicit refresh.
type Widget struct {
	Source   widgets.Source
	Interval time.Duration
	Cache    bool
}

type cell struct {
	widget Widget

	// refreshMu serializes fetches of this widget; mu guards state.
	refreshMu sync.Mutex
	mu        sync.RWMutex
	state     models.WidgetState
}

func (c *cell) get() models.WidgetState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *cell) set(s models.WidgetState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Board is the default DashboardService. The set of widgets is fixed at
// construction; cells never share state.
type Board struct {
	order  []string
	cells  map[string]*cell
	cache  SnapshotCache
	logger *zap.Logger
	now    func() time.Time
}

func NewBoard(ws []Widget, cache SnapshotCache, logger *zap.Logger) (*Board, error) {
	if cache == nil {
		cache = NopCache{}
	}
	b := &Board{
		cells:  make(map[string]*cell, len(ws)),
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
	for _, w := range ws {
		name := w.Source.Name()
		if _, dup := b.cells[name]; dup {
			return nil, fmt.Errorf("widget %q registered twice", name)
		}
		b.order = append(b.order, name)
		b.cells[name] = &cell{
			widget: w,
			state: models.WidgetState{
				Name:   name,
				Title:  w.Source.Title(),
				Status: models.StatusLoading,
			},
		}
	}
	return b, nil
}

func (b *Board) cell(name string) (*cell, error) {
	c, ok := b.cells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, name)
	}
	return c, nil
}

// Widgets returns the registered widgets in display order.
func (b *Board) Widgets() []Widget {
	out := make([]Widget, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.cells[name].widget)
	}
	return out
}

func (b *Board) State(name string) (models.WidgetState, error) {
	c, err := b.cell(name)
	if err != nil {
		return models.WidgetState{}, err
	}
	return c.get(), nil
}

// Snapshot returns every widget state in display order.
func (b *Board) Snapshot() []models.WidgetState {
	out := make([]models.WidgetState, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.cells[name].get())
	}
	return out
}

// Refresh fetches one widget once. A failed fetch is not an error here: it is
// recorded in the widget's state, either as fallback data or as a visible
// error, depending on the source. Only an unknown widget or a cancelled ctx
// is returned as an error, and a cancelled ctx leaves the state unchanged.
func (b *Board) Refresh(ctx context.Context, name string) (models.WidgetState, error) {
	c, err := b.cell(name)
	if err != nil {
		return models.WidgetState{}, err
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	src := c.widget.Source
	data, fetchErr := src.Fetch(ctx)
	if fetchErr != nil && ctx.Err() != nil {
		// The caller gave up; that says nothing about the upstream, so the
		// shared state keeps its last value.
		return c.get(), fmt.Errorf("refresh %s: %w", name, ctx.Err())
	}

	state := models.WidgetState{
		Name:      name,
		Title:     src.Title(),
		UpdatedAt: b.now(),
	}

	switch {
	case fetchErr == nil:
		state.Status = models.StatusReady
		state.Data = data
		if c.widget.Cache {
			b.store(ctx, name, state)
		}
	default:
		if fb, ok := src.(widgets.Fallback); ok {
			b.logger.Warn("widget fetch failed, using fallback", zap.String("widget", name), zap.Error(fetchErr))
			state.Status = models.StatusReady
			state.Data = fb.Fallback()
			state.Fallback = true
			break
		}
		b.logger.Error("widget fetch failed", zap.String("widget", name), zap.Error(fetchErr))
		state.Status = models.StatusError
		state.Error = fetchErr.Error()
		if m, ok := src.(widgets.ErrorMessage); ok {
			state.Error = m.ErrorMessage()
		}
	}

	c.set(state)
	return state, nil
}

func (b *Board) store(ctx context.Context, name string, state models.WidgetState) {
	raw, err := json.Marshal(state.Data)
	if err != nil {
		b.logger.Warn("encode widget snapshot", zap.String("widget", name), zap.Error(err))
		return
	}
	snap := CachedSnapshot{Data: raw, UpdatedAt: state.UpdatedAt}
	if err := b.cache.Set(ctx, name, snap); err != nil {
		b.logger.Warn("cache widget snapshot", zap.String("widget", name), zap.Error(err))
	}
}

// Warm seeds still-loading cacheable widgets from the snapshot cache so the
// first page render does not wait on upstream APIs.
func (b *Board) Warm(ctx context.Context) int {
	warmed := 0
	for _, name := range b.order {
		c := b.cells[name]
		if !c.widget.Cache || !c.get().Loading() {
			continue
		}

		snap, found, err := b.cache.Get(ctx, name)
		if err != nil {
			b.logger.Warn("read widget snapshot", zap.String("widget", name), zap.Error(err))
			continue
		}
		if !found {
			continue
		}

		data, err := c.widget.Source.Decode(snap.Data)
		if err != nil {
			b.logger.Warn("decode widget snapshot", zap.String("widget", name), zap.Error(err))
			continue
		}

		c.refreshMu.Lock()
		if c.get().Loading() {
			c.set(models.WidgetState{
				Name:      name,
				Title:     c.widget.Source.Title(),
				Status:    models.StatusReady,
				Data:      data,
				UpdatedAt: snap.UpdatedAt,
			})
			warmed++
		}
		c.refreshMu.Unlock()
	}
	return warmed
}
