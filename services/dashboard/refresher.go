package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RunRefresher fetches every widget once, then keeps refreshing each widget
// with a non-zero interval on its own ticker. It blocks until ctx is done and
// all widget loops have returned.
func RunRefresher(ctx context.Context, b *Board) {
	var wg sync.WaitGroup
	for _, w := range b.Widgets() {
		wg.Add(1)
		go func(w Widget) {
			defer wg.Done()
			runWidget(ctx, b, w)
		}(w)
	}
	wg.Wait()
	b.logger.Info("refresher stopped")
}

// FetchAll refreshes every widget once, each in its own goroutine.
func FetchAll(ctx context.Context, b *Board) {
	var wg sync.WaitGroup
	for _, w := range b.Widgets() {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			b.Refresh(ctx, name)
		}(w.Source.Name())
	}
	wg.Wait()
}

func runWidget(ctx context.Context, b *Board, w Widget) {
	name := w.Source.Name()
	b.Refresh(ctx, name)

	if w.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.logger.Debug("widget refresh loop stopped", zap.String("widget", name))
			return
		case <-ticker.C:
			b.Refresh(ctx, name)
		}
	}
}
