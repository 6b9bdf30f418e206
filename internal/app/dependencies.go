package app

import (
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/config"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/handlers"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/repository/cache"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/repository/postgres"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/service"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/utils/jwt"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	order        domain.OrderRepository
	product      domain.ProductRepository
	cart         domain.CartRepository
	notification domain.NotificationRepository
}

// services содержит все сервисы приложения
type services struct {
	plan         domain.PlanService
	eligibility  domain.EligibilityService
	analytics    domain.AnalyticsService
	notifier     domain.Notifier
	restrictions domain.RestrictionChecker
	dispatcher   domain.NotificationDispatcher
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	installments *handlers.InstallmentsHandler
	analytics    *handlers.AnalyticsHandler
	health       *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		order:        postgres.NewOrderRepository(dbPool),
		product:      postgres.NewProductRepository(dbPool),
		cart:         postgres.NewCartRepository(dbPool),
		notification: postgres.NewNotificationRepository(dbPool),
	}

	// Создание утилит
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Кеш скоринга опционален
	var scoreCache cache.Cache
	if cfg.RedisAddress != "" {
		scoreCache = cache.NewRedisCache(cfg.RedisAddress, "installments")
	}

	// Доставка уведомлений опциональна: без адреса диспетчера
	// записи остаются в outbox
	var dispatcher domain.NotificationDispatcher
	if cfg.NotifierAddress != "" {
		dispatcher = service.NewDispatchClient(cfg.NotifierAddress)
	}

	// Создание сервисов
	notifier := service.NewNotifier(repos.notification, logger)
	eligibility := service.NewEligibilityService(repos.order, scoreCache, logger)
	restrictions := service.NewRestrictionClient(cfg.RestrictionsAddress)
	svcs := &services{
		plan:         service.NewPlanService(repos.order, repos.product, repos.cart, restrictions, eligibility, notifier, logger),
		eligibility:  eligibility,
		analytics:    service.NewAnalyticsService(repos.order),
		notifier:     notifier,
		restrictions: restrictions,
		dispatcher:   dispatcher,
	}

	// Создание handlers
	hdlrs := &handlerSet{
		installments: handlers.NewInstallmentsHandler(svcs.plan, logger),
		analytics:    handlers.NewAnalyticsHandler(svcs.eligibility, svcs.analytics, logger),
		health:       handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание пула сверки
	poolConfig := worker.PoolConfig{
		Workers:         cfg.SweepWorkers,
		QueueSize:       cfg.SweepQueueSize,
		ScanInterval:    cfg.SweepInterval,
		ReminderHorizon: cfg.ReminderHorizon,
		DispatchBatch:   cfg.DispatchBatch,
	}
	workerPool := worker.NewPool(poolConfig, repos.order, repos.product, notifier, repos.notification, dispatcher, logger)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
