package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/shaheencodecrafters/marketplace-service/internal/api/http"
	"github.com/shaheencodecrafters/marketplace-service/internal/api/http/handlers"
	"github.com/shaheencodecrafters/marketplace-service/internal/config"
	"github.com/shaheencodecrafters/marketplace-service/internal/events"
	"github.com/shaheencodecrafters/marketplace-service/internal/observability"
	"github.com/shaheencodecrafters/marketplace-service/internal/persistence"
	"github.com/shaheencodecrafters/marketplace-service/internal/repository"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	"github.com/shaheencodecrafters/marketplace-service/internal/session"
	"github.com/shaheencodecrafters/marketplace-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	sliderRepo := repository.NewSliderRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	sessionStore := session.NewRedisStore(redis.Client, cfg.Session.TTL())
	sessionMiddleware := session.NewMiddleware(sessionStore, cfg.Session)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		SessionStore: sessionStore,
		Dispatcher:   dispatcher,
	})
	orderService := service.NewOrderService(*cfg, service.OrderDependencies{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		SliderRepo:   sliderRepo,
	})

	app := fiber.New()
	metrics := observability.NewMetrics()
	policy := httptransport.NewOriginPolicy(cfg.CORS.TrustedPrefixes)
	httptransport.RegisterMiddlewares(app, logger, metrics, policy, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Sessions:   handlers.NewSessionsHandler(authService, cfg.Session),
		Users:      handlers.NewUsersHandler(authService),
		Orders:     handlers.NewOrdersHandler(orderService),
		Categories: handlers.NewCategoriesHandler(catalogService),
		Products:   handlers.NewProductsHandler(catalogService),
		Sliders:    handlers.NewSlidersHandler(catalogService),
		Session:    sessionMiddleware,
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
