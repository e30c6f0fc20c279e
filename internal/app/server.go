package app

import (
	"context"

	"github.com/Gunvolt24/oncall_routes/config"
	"github.com/Gunvolt24/oncall_routes/internal/kafka"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/internal/repo/postgres"
	rest "github.com/Gunvolt24/oncall_routes/internal/transport/http"
	"github.com/Gunvolt24/oncall_routes/internal/usecase"
	"github.com/Gunvolt24/oncall_routes/pkg/logger"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
	"github.com/Gunvolt24/oncall_routes/pkg/validate"
)

// newPublisher — продюсер событий изменений или заглушка, если брокеры не заданы.
func newPublisher(cfg config.Kafka) ports.EventPublisher {
	if len(cfg.Brokers) == 0 {
		return kafka.NopPublisher{}
	}
	return kafka.NewProducer(&kafka.ProducerConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		WriteTimeout: cfg.WriteTimeout,
	})
}

// BootstrapServer — эталонный API маршрутизации: Postgres, сервисы, публикация событий.
func BootstrapServer(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			_ = cleanupLogger()
			return nil, func() {}, err
		}
		logg.Infof(ctx, "migrations applied")
	}

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	shutdownTrace, otelServiceName := setupTracing(ctx, cfg.Tracing, "server", logg)

	// Сборка зависимостей доменного слоя.
	publisher := newPublisher(cfg.Kafka)
	routeRepo := postgres.NewRouteRepository(pool)
	integrationRepo := postgres.NewIntegrationRepository(pool)
	chainRepo := postgres.NewEscalationRepository(pool)
	buttonRepo := postgres.NewCustomButtonRepository(pool)

	services := rest.Services{
		Routes: usecase.NewRouteService(routeRepo, integrationRepo, chainRepo,
			validate.NewRouteValidator(), publisher, logg),
		Integrations: usecase.NewIntegrationService(integrationRepo,
			validate.NewIntegrationValidator(), publisher, logg, cfg.EmailHost),
		CustomButtons: usecase.NewCustomButtonService(buttonRepo, integrationRepo, logg),
		Escalations:   usecase.NewEscalationService(chainRepo, logg),
		Health:        pool,
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Роутер и HTTP-сервер.
	handler := rest.NewHandler(services, logg, cfg.HTTP.HandlerTimeout).WithMaintenance(cfg.Maintenance)
	router := rest.NewRouter(handler, otelServiceName)

	app := &App{
		Logger:          logg,
		HTTPServer:      newHTTPServer(cfg.HTTP, router),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := publisher.Close(); err != nil {
			logg.Warnf(ctx, "kafka producer close error: %v", err)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}
