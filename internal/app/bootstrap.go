package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/oncall_routes/config"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер сообщений; nil — без Kafka
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
	onStop          []func()              // остановка фоновых компонентов до закрытия ресурсов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// setupTracing — OTEL при включённой конфигурации; иначе no-op.
// Возвращает shutdown и имя сервиса для otelgin ("" — без трейсинга).
func setupTracing(ctx context.Context, cfg config.Tracing, role string, log ports.Logger) (func(context.Context) error, string) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return noop, ""
	}
	shutdown, err := telemetry.SetupTracing(ctx, telemetry.Options{
		ServiceName: cfg.ServiceName,
		Role:        role,
		Endpoint:    cfg.Endpoint,
		SampleRatio: cfg.SampleRatio,
	})
	if err != nil {
		log.Warnf(ctx, "tracing disabled role=%s err=%v", role, err)
		return noop, ""
	}
	log.Infof(ctx, "tracing enabled service=%s role=%s endpoint=%s sample=%.2f",
		cfg.ServiceName, role, cfg.Endpoint, telemetry.ClampRatio(cfg.SampleRatio))
	return shutdown, cfg.ServiceName
}

func newHTTPServer(cfg config.HTTP, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Run — обслуживает HTTP и (если есть) читает события изменений до отмены ctx.
// Падение фонового компонента останавливает всё приложение и возвращается
// вызывающему; остановка по ctx ошибкой не считается.
func (a *App) Run(ctx context.Context) error {
	failed := make(chan error, 2)
	a.start(ctx, failed)

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested")
	case err := <-failed:
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Errorf(ctx, "component failed, stopping: %v", err)
			runErr = err
		}
	}

	a.stop(ctx)
	return runErr
}

func (a *App) start(ctx context.Context, failed chan<- error) {
	if a.KafkaConsumer != nil {
		go func() {
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				failed <- fmt.Errorf("change event consumer: %w", err)
			}
		}()
	}
	go func() {
		a.Logger.Infof(ctx, "http listening addr=%s", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- fmt.Errorf("http server: %w", err)
		}
	}()
}

// stop — HTTP первым (дожидаемся активных запросов), затем фоновые
// компоненты и консьюмер.
func (a *App) stop(ctx context.Context) {
	grace := a.gracefulTimeout
	if grace <= 0 {
		grace = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), grace)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http shutdown: %v", err)
	}
	for _, fn := range a.onStop {
		fn()
	}
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "consumer close: %v", err)
		}
	}
	a.Logger.Infof(ctx, "stopped")
}
