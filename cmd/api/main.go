package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/volunteer-hub/internal/api/http"
	"github.com/spec-kit/volunteer-hub/internal/api/http/handlers"
	"github.com/spec-kit/volunteer-hub/internal/config"
	"github.com/spec-kit/volunteer-hub/internal/events"
	"github.com/spec-kit/volunteer-hub/internal/observability"
	"github.com/spec-kit/volunteer-hub/internal/persistence"
	"github.com/spec-kit/volunteer-hub/internal/repository"
	"github.com/spec-kit/volunteer-hub/internal/service"
	"github.com/spec-kit/volunteer-hub/internal/session"
	"github.com/spec-kit/volunteer-hub/internal/store"
	"github.com/spec-kit/volunteer-hub/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	volunteerRepo := repository.NewVolunteerRepository(pg.PoolHandle())
	if pg.PoolHandle() != nil {
		if err := volunteerRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to ensure volunteers schema", zap.Error(err))
		}
	}

	var redis *persistence.Redis
	var registry store.Registry
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		registry = store.NewRedisRegistry(redis.Client, cfg.Session.TTL())
	default:
		registry = store.NewMemoryRegistry()
	}

	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(cfg.Auth, registry, dispatcher)
	eventService := service.NewEventService(registry, dispatcher)
	directoryService := service.NewDirectoryService(registry)
	volunteerService := service.NewVolunteerService(volunteerRepo, logger)
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, session.Config{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL(),
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Store, pg, redis),
		Mock:       handlers.NewMockAPIHandler(authService, eventService, directoryService, metrics),
		Volunteers: handlers.NewVolunteersHandler(volunteerService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
