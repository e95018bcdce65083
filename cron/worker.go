package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dashboard/config"
	"dashboard/services/dashboard"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeWidgetRefresh = "widget:refresh"

type RefreshPayload struct {
	Widget string `json:"widget"`
}

// NewRefreshTask builds a single-attempt refresh task for one widget.
func NewRefreshTask(widget string, timeout time.Duration) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshPayload{Widget: widget})
	if err != nil {
		return nil, err
	}
	opts := []asynq.Option{asynq.MaxRetry(0)}
	if timeout > 0 {
		opts = append(opts, asynq.Timeout(timeout))
	}
	return asynq.NewTask(TypeWidgetRefresh, payload, opts...), nil
}

// InitRefreshQueue schedules every interval widget on asynq and starts a
// worker that applies the refreshes to board. The returned func stops both.
func InitRefreshQueue(board *dashboard.Board, logger *zap.Logger) (func(), error) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	widgets := board.Widgets()
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: len(widgets),
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeWidgetRefresh, handleRefreshTask(board, logger))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: config.Location(),
	})
	for _, w := range widgets {
		if w.Interval <= 0 {
			continue
		}
		name := w.Source.Name()
		task, err := NewRefreshTask(name, config.AppConfig.HTTPTimeout)
		if err != nil {
			return nil, err
		}
		cronspec := fmt.Sprintf("@every %s", w.Interval)
		// Unique keeps a slow upstream from piling up refreshes of the same widget.
		if _, err := scheduler.Register(cronspec, task, asynq.Unique(w.Interval)); err != nil {
			return nil, fmt.Errorf("schedule %s: %w", name, err)
		}
		logger.Info("scheduled widget refresh", zap.String("widget", name), zap.String("cronspec", cronspec))
	}

	const maxAttempts = 5
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = srv.Start(mux); err == nil {
			break
		}
		logger.Warn("refresh worker failed to start", zap.Int("attempt", attempts), zap.Error(err))
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("start refresh worker: %w", err)
	}

	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return nil, fmt.Errorf("start refresh scheduler: %w", err)
	}

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}, nil
}

func handleRefreshTask(svc dashboard.DashboardService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid refresh payload: %v: %w", err, asynq.SkipRetry)
		}

		state, err := svc.Refresh(ctx, p.Widget)
		if errors.Is(err, dashboard.ErrUnknownWidget) {
			logger.Warn("refresh task for unknown widget", zap.String("widget", p.Widget))
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		if err != nil {
			return err
		}

		logger.Debug("widget refreshed",
			zap.String("widget", p.Widget),
			zap.String("status", string(state.Status)),
			zap.Bool("fallback", state.Fallback),
		)
		return nil
	}
}
