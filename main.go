package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashboard/config"
	"dashboard/cron"
	"dashboard/handlers"
	"dashboard/middleware"
	"dashboard/routes"
	"dashboard/services/dashboard"
	"dashboard/services/widgets"
	"dashboard/utils"
	"dashboard/views"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const pageRefreshSeconds = 60

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc := config.Location()
	now := func() time.Time { return time.Now().In(loc) }
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	// widgets, in display order.
	board, err := dashboard.NewBoard([]dashboard.Widget{
		{Source: widgets.NewClockSource(now, loc), Interval: cfg.ClockInterval},
		{Source: widgets.NewNameDaySource(now), Interval: cfg.NameDayInterval},
		{Source: widgets.NewWeatherSource(client, cfg.WeatherAPIURL, cfg.WeatherCity), Interval: cfg.WeatherInterval, Cache: true},
		{Source: widgets.NewPriceSource(client, cfg.PriceAPIURL), Interval: cfg.PriceInterval, Cache: true},
		{Source: widgets.NewQuoteSource(client, cfg.QuoteAPIURL), Interval: cfg.QuoteInterval, Cache: true},
		{Source: widgets.NewJokeSource(client, cfg.JokeAPIURL), Interval: cfg.JokeInterval, Cache: true},
		{Source: widgets.NewImageSource(client, cfg.ImageURL, cfg.ImageFallbackURL, now), Interval: cfg.ImageInterval, Cache: true},
		{Source: widgets.NewCalendarSource(client, cfg.CalendarICSURL, now, loc, logger), Interval: cfg.CalendarInterval},
	}, snapshotCache(logger), logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build dashboard: %v", err)
	}

	if n := board.Warm(ctx); n > 0 {
		logger.Info("main: widgets restored from cache", zap.Int("count", n))
	}

	redisClients := map[string]*redis.Client{}
	if cache := utils.GetCacheClient(); cache != nil {
		redisClients["cache"] = cache
	}

	var stopQueue func()
	switch cfg.RefreshMode {
	case "queue":
		// The worker only fires on schedule, so every widget still gets its first fetch here.
		go dashboard.FetchAll(ctx, board)
		stopQueue, err = cron.InitRefreshQueue(board, logger)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to start refresh queue: %v", err)
		}
		redisClients["queue"] = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		})
	default:
		go dashboard.RunRefresher(ctx, board)
	}
	if len(redisClients) > 0 {
		utils.StartHealthMonitor(ctx, redisClients, time.Minute)
	}

	manager, err := views.NewManager()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse templates: %v", err)
	}
	dashboardHandler := handlers.NewDashboardHandler(board, manager, pageRefreshSeconds, now)
	dashboardHandler.LiveWidgets = []string{"clock"}
	handlerBundle := handlers.NewHandlerBundle(dashboardHandler)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	cancel()
	if stopQueue != nil {
		stopQueue()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// snapshotCache returns the redis-backed cache when SNAPSHOT_CACHE is on and
// redis answers, and a no-op cache otherwise.
func snapshotCache(logger *zap.Logger) dashboard.SnapshotCache {
	if !config.AppConfig.SnapshotCache {
		return dashboard.NopCache{}
	}
	if err := utils.InitCache(); err != nil {
		logger.Warn("main: snapshot cache disabled", zap.Error(err))
		utils.CacheClient.Close()
		utils.CacheClient = nil
		return dashboard.NopCache{}
	}
	return dashboard.NewRedisSnapshotCache(utils.GetCacheClient(), config.AppConfig.SnapshotTTL)
}
