package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gateway_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/gateway"
	token_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/jwt"
	logger_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/logger"
	memory_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/memory"
	postgres_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/postgres"
	rabbitmq_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/rabbitmq"
	"github.com/Tushar123097/Home-rent-app/internal/adapters/rest"
	"github.com/Tushar123097/Home-rent-app/internal/configs"
	"github.com/Tushar123097/Home-rent-app/internal/contracts"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
	"github.com/Tushar123097/Home-rent-app/internal/core/usecase"
	"github.com/Tushar123097/Home-rent-app/internal/fixtures"
	fluentlogger "github.com/Tushar123097/Home-rent-app/pkg/fluent_logger"
	"github.com/Tushar123097/Home-rent-app/pkg/postgres"
	"github.com/Tushar123097/Home-rent-app/pkg/rabbitmq/rabbitmq_common"
	"github.com/Tushar123097/Home-rent-app/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 15 * time.Second
	// как часто удалять просроченные сессии
	sessionSweepInterval = time.Minute
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server
	registry  *session.Registry

	rabbitConnManager *rabbitmq_common.ConnectionManager
	eventPublisher    port.BookingEventPublisherPort

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	baseLogger, err := app.initLoggers()
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger = appLogger

	if err := contracts.Load(); err != nil {
		appLogger.Error("Failed to compile request schemas", err, nil)
		app.cleanup()
		return nil, fmt.Errorf("failed to compile request schemas: %w", err)
	}

	// --- 2. ХРАНИЛИЩЕ ---
	properties, users, err := app.initStore(appLogger)
	if err != nil {
		app.cleanup()
		return nil, err
	}

	// --- 3. ИМИТИРУЕМЫЕ БЭКЕНДЫ И СЕССИИ ---
	authGateway, err := gateway_adapter.NewSimulatedAuthGateway(users, gateway_adapter.AuthGatewayConfig{
		Latency: appConfig.Gateway.AuthLatency,
		Strict:  appConfig.Gateway.AuthStrict,
	})
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create auth gateway: %w", err)
	}
	bookingGateway, err := gateway_adapter.NewSimulatedBookingGateway(users, appConfig.Gateway.BookingLatency)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create booking gateway: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.Session.JWTSecretKey)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	dedup := session.WithWishlistDedup(appConfig.Session.WishlistDedup)
	app.registry = session.NewRegistry(appConfig.Session.TTL, func(id string) *session.Session {
		return session.New(id, authGateway, dedup)
	})

	// --- 4. СОБЫТИЯ БРОНИРОВАНИЙ ---
	if err := app.initEventPublisher(baseLogger); err != nil {
		app.cleanup()
		return nil, err
	}

	appLogger.Info("All persistence and service adapters initialized.", port.Fields{
		"store":         appConfig.Store.Driver,
		"auth_strict":   appConfig.Gateway.AuthStrict,
		"rabbitmq":      appConfig.RabbitMQ.Enabled,
		"auth_latency":  appConfig.Gateway.AuthLatency.String(),
		"booking_delay": appConfig.Gateway.BookingLatency.String(),
	})

	// --- 5. USE CASES ---
	timeout := appConfig.Gateway.Timeout
	handlers := rest.Handlers{
		Catalog: rest.NewCatalogHandlers(
			usecase.NewFindPropertiesUseCase(properties),
			usecase.NewGetFeaturedPropertiesUseCase(properties),
			usecase.NewGetPropertyDetailsUseCase(properties, users),
		),
		Session: rest.NewSessionHandlers(
			usecase.NewLoginUseCase(timeout),
			usecase.NewLogoutUseCase(),
			usecase.NewRegisterUseCase(timeout),
		),
		Wishlist: rest.NewWishlistHandlers(
			usecase.NewGetWishlistUseCase(properties),
			usecase.NewAddToWishlistUseCase(properties, users),
			usecase.NewRemoveFromWishlistUseCase(users),
		),
		Booking: rest.NewBookingHandlers(
			usecase.NewQuoteBookingUseCase(properties),
			usecase.NewSubmitBookingUseCase(properties, bookingGateway, app.eventPublisher, timeout),
			usecase.NewCancelBookingUseCase(users),
			usecase.NewGetDashboardUseCase(properties),
		),
	}
	resolveSession := usecase.NewResolveSessionUseCase(app.registry, tokenService, appConfig.Session.TTL)

	// --- 6. REST API ---
	router := rest.NewRouter(rest.RouterConfig{AllowedOrigins: appConfig.Rest.AllowedOrigins}, handlers, resolveSession, baseLogger)
	app.apiServer = rest.NewServer(appConfig.Rest.Port, router, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return app, nil
}

func (a *App) initLoggers() (port.LoggerPort, error) {
	cfg := a.config
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.IsJSON,
		UseColor: !cfg.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if cfg.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.FluentBit.TagPrefix,
			Timeout:   3 * time.Second,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		// префикс добавляет сам клиент fluent
		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, "", logger_adapter.ParseLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			_ = fluentClient.Close()
			return nil, err
		}
		a.fluentClient = fluentClient
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, nil
}

// initStore поднимает хранилище по STORE_DRIVER. Postgres при первом запуске
// получает схему и демонстрационные данные.
func (a *App) initStore(appLogger port.LoggerPort) (port.PropertyRepositoryPort, port.UserRepositoryPort, error) {
	if a.config.Store.Driver == configs.StoreMemory {
		appLogger.Info("Using in-memory store with demo data", nil)
		return memory_adapter.NewPropertyRepository(fixtures.Properties()),
			memory_adapter.NewUserRepository(fixtures.Users()), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := postgres.NewClient(ctx, postgres.Config{
		DatabaseURL: a.config.Store.DatabaseURL,
		MaxConns:    a.config.Store.MaxConns,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	if err := postgres_adapter.EnsureSchema(ctx, dbPool); err != nil {
		appLogger.Error("Failed to apply schema", err, nil)
		return nil, nil, err
	}
	if err := postgres_adapter.Seed(ctx, dbPool, fixtures.Properties(), fixtures.Users()); err != nil {
		appLogger.Error("Failed to seed demo data", err, nil)
		return nil, nil, err
	}

	properties, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create postgres property repository: %w", err)
	}
	users, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create postgres user repository: %w", err)
	}
	return properties, users, nil
}

func (a *App) initEventPublisher(baseLogger port.LoggerPort) error {
	if !a.config.RabbitMQ.Enabled {
		a.eventPublisher = rabbitmq_adapter.LogEventPublisher{}
		return nil
	}

	pkgLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, pkgLogger)
	if err != nil {
		a.logger.Error("Failed to connect to RabbitMQ", err, nil)
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.rabbitConnManager = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   pkgLogger,
	}, connManager)
	if err != nil {
		a.logger.Error("Failed to create RabbitMQ publisher", err, nil)
		return fmt.Errorf("failed to create RabbitMQ publisher: %w", err)
	}

	publisher, err := rabbitmq_adapter.NewBookingEventPublisher(producer, rabbitmq_adapter.RoutingKeyBookingRequested)
	if err != nil {
		_ = producer.Close()
		return err
	}
	a.eventPublisher = publisher
	return nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	defer a.cleanup()
	defer cancelApp()

	a.logger.Info("Application is starting...", nil)

	go a.sweepSessions(appCtx)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("Server failed, shutting down", err, nil)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// sweepSessions периодически удаляет сессии, не использовавшиеся дольше TTL.
func (a *App) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := a.registry.Sweep(now); removed > 0 {
				a.logger.Debug("Expired sessions removed", port.Fields{"removed": removed, "active": a.registry.Len()})
			}
		}
	}
}

// cleanup освобождает ресурсы. Безопасен для частично собранного App.
func (a *App) cleanup() {
	if a.logger != nil {
		a.logger.Info("Shutdown sequence initiated...", nil)
	}

	if a.eventPublisher != nil {
		if err := a.eventPublisher.Close(); err != nil && a.logger != nil {
			a.logger.Error("Error closing event publisher", err, nil)
		}
	}
	if a.rabbitConnManager != nil {
		if err := a.rabbitConnManager.Close(); err != nil && a.logger != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		if a.logger != nil {
			a.logger.Info("PostgreSQL pool closed.", nil)
		}
	}

	if a.logger != nil {
		a.logger.Info("Application shut down gracefully.", nil)
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
