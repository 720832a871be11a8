package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "tulook/docs"
	"tulook/internal/auth"
	"tulook/internal/config"
	"tulook/internal/geo"
	"tulook/internal/handlers"
	"tulook/internal/logger"
	"tulook/internal/monitoring"
	"tulook/internal/queue"
	"tulook/internal/server"
	"tulook/internal/settings"
	"tulook/internal/storage"
	"tulook/internal/tasks"
	"tulook/internal/wisdom"
	"tulook/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// @Title						TuLook walk-in queue
// @Description				Live walk-in queue for the TuLook barbershop.
// @Version					1.0
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.ConnectDatabase(cfg, log)
	if err != nil {
		return err
	}
	if err := storage.Migrate(db); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisEnabled {
		rdb, err = storage.InitRedis(ctx, cfg)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	hub := queue.NewHub()
	go hub.Run(ctx)

	store := queue.NewStore(db, hub, log)
	if rdb != nil {
		notifier := queue.NewRedisNotifier(rdb, log)
		store.SetNotifier(notifier)
		go notifier.Listen(ctx, store.Refresh)
	}
	if err := store.Load(ctx); err != nil {
		return err
	}

	cfgStore := settings.NewStore(db, log)
	if err := cfgStore.Load(ctx); err != nil {
		return err
	}

	gate, err := auth.NewGate(cfg.AdminSecret, cfg.AdminSecretHash, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	if err != nil {
		return err
	}

	var gen wisdom.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := wisdom.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		defer gemini.Close()
		gen = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, stylist wisdom uses the fallback message")
	}

	var fence *geo.Fence
	if cfg.GeofenceEnabled {
		fence = &geo.Fence{
			Center:        geo.Point{Lat: cfg.VenueLat, Lng: cfg.VenueLng},
			RadiusMeters:  cfg.VenueRadiusMeters,
			DirectionsURL: cfg.DirectionsURL,
		}
	}

	monitor := monitoring.NewMonitor(hub, log)
	go monitor.Run(ctx)

	planner := tasks.NewPlanner(store, cfgStore, cfg.FinishedRetention, log)
	scheduler, err := planner.Start()
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	h := handlers.New(handlers.Deps{
		Queue:    store,
		Settings: cfgStore,
		Gate:     gate,
		Wisdom:   wisdom.NewService(gen, rdb, cfg.WisdomCacheTTL, log),
		Fence:    fence,
		Monitor:  monitor,
		Log:      log,
	})
	router := server.NewRouter(h, ws.NewHandler(hub, log), gate, log, server.Options{
		AllowedOrigins:  cfg.AllowedOrigins(),
		RateLimitPerMin: cfg.RateLimitPerMin,
		Swagger:         !cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
