package app

import (
	"context"

	"github.com/Gunvolt24/oncall_routes/config"
	cachemem "github.com/Gunvolt24/oncall_routes/internal/cache/memory"
	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/gateway"
	"github.com/Gunvolt24/oncall_routes/internal/kafka"
	"github.com/Gunvolt24/oncall_routes/internal/store"
	"github.com/Gunvolt24/oncall_routes/internal/transport/console"
	"github.com/Gunvolt24/oncall_routes/internal/transport/ws"
	"github.com/Gunvolt24/oncall_routes/pkg/logger"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
)

// BootstrapConsole — консоль: кэши и хранилища поверх удалённого API, сверка по событиям
// из Kafka, websocket-лента изменений кэша.
func BootstrapConsole(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	shutdownTrace, otelServiceName := setupTracing(ctx, cfg.Tracing, "console", logg)

	// Удалённый API и кэши.
	client := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Token, cfg.Gateway.Timeout)

	routeCache := cachemem.NewOrdered[*domain.Route](store.RoutesCollection, cfg.Cache.Capacity, cfg.Cache.TTL)
	integrationCache := cachemem.NewOrdered[*domain.Integration](store.IntegrationsCollection, cfg.Cache.Capacity, cfg.Cache.TTL)
	chainCache := cachemem.NewOrdered[*domain.EscalationChain](store.EscalationsCollection, 1, cfg.Cache.TTL)

	routes := store.NewRouteStore(client, routeCache, logg, cfg.Cache.ReconcileTimeout)
	integrations := store.NewIntegrationStore(client, integrationCache, logg)
	chains := store.NewEscalationStore(client, chainCache, logg)

	// Структурные изменения маршрутов меняют счётчики интеграции.
	routes.OnStructuralChange(func(ctx context.Context, _ string) {
		integrations.RefreshCountersBestEffort(ctx)
	})

	// Лента изменений кэша.
	hub := ws.NewHub(ws.Config{
		SendBuffer:   cfg.WS.SendBuffer,
		PingInterval: cfg.WS.PingInterval,
		WriteTimeout: cfg.WS.WriteTimeout,
	}, logg)
	unsubscribe := []func(){
		routes.Subscribe(hub.Broadcast),
		integrationCache.OnChange(hub.Broadcast),
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	handler := console.NewHandler(
		console.Stores{Routes: routes, Integrations: integrations, Escalations: chains},
		console.Display{SlackInstalled: cfg.Display.SlackInstalled, TelegramInstalled: cfg.Display.TelegramInstalled},
		hub.ServeWS,
		logg,
		cfg.HTTP.HandlerTimeout,
	)
	router := console.NewRouter(handler, otelServiceName)

	app := &App{
		Logger:          logg,
		HTTPServer:      newHTTPServer(cfg.HTTP, router),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
		onStop:          []func(){hub.Close},
	}

	// События изменений от сервера (если Kafka настроена).
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		if verr := kafkaCfg.Validate(); verr != nil {
			logg.Warnf(ctx, "change events disabled: %v", verr)
		} else {
			app.KafkaConsumer = kafka.NewConsumer(&kafkaCfg, store.NewEventHandler(routes, integrations, logg), logg)
		}
	} else {
		logg.Warnf(ctx, "kafka brokers not configured, change events disabled")
	}

	cleanup := func() {
		for _, fn := range unsubscribe {
			fn()
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}
