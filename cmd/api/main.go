package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Consort-Group-Corp/support-service/internal/api/http"
	"github.com/Consort-Group-Corp/support-service/internal/api/http/handlers"
	"github.com/Consort-Group-Corp/support-service/internal/auth"
	"github.com/Consort-Group-Corp/support-service/internal/config"
	"github.com/Consort-Group-Corp/support-service/internal/events"
	"github.com/Consort-Group-Corp/support-service/internal/observability"
	"github.com/Consort-Group-Corp/support-service/internal/persistence"
	"github.com/Consort-Group-Corp/support-service/internal/repository"
	"github.com/Consort-Group-Corp/support-service/internal/service"
	"github.com/Consort-Group-Corp/support-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	presetRepo := repository.NewPresetRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	presetCache := repository.NewRedisPresetCache(redis.Client, cfg.Cache.PresetTTL())

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	presetValidator := service.NewPresetValidator(presetRepo)
	ticketValidator := service.NewTicketValidator(presetRepo, logger)

	catalog := service.NewPresetCatalogService(service.PresetCatalogDependencies{
		PresetRepo: presetRepo,
		Cache:      presetCache,
		Validator:  presetValidator,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	intake := service.NewTicketIntakeService(service.TicketIntakeDependencies{
		TicketRepo: ticketRepo,
		Validator:  ticketValidator,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	ticketAdmin := service.NewTicketAdminService(ticketRepo, dispatcher, logger)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(tokenManager)

	metrics := observability.NewMetrics(cfg.App.Name)
	validate := validator.New()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Support:        handlers.NewSupportHandler(intake, catalog, validate),
		AdminPresets:   handlers.NewAdminPresetsHandler(catalog, validate),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketAdmin, validate),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
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
