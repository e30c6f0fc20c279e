// Пакет telemetry — подключение OpenTelemetry для API-сервера и консоли.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const defaultEndpoint = "localhost:4318"

// Options — параметры экспорта трейсов.
type Options struct {
	ServiceName string  // имя сервиса в ресурсе
	Role        string  // "server" | "console"; пусто — без атрибута
	Endpoint    string  // host:port OTLP/HTTP-коллектора
	SampleRatio float64 // доля корневых спанов, приводится к [0..1]
}

// ClampRatio — доля семплирования в границах [0..1].
func ClampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

// Sampler — семплер, уважающий решение родителя.
// Консоль продолжает трейс, начатый в CLI или браузере, а запросы к API
// уносят traceparent дальше через otelhttp.
func Sampler(ratio float64) sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ClampRatio(ratio)))
}

func newResource(opts Options) *resource.Resource {
	attrs := []attribute.KeyValue{semconv.ServiceName(opts.ServiceName)}
	if opts.Role != "" {
		attrs = append(attrs, attribute.String("oncall.role", opts.Role))
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}

// SetupTracing — OTLP/HTTP экспорт, глобальный провайдер и пропагаторы
// (TraceContext + Baggage). Возвращает Shutdown провайдера.
func SetupTracing(ctx context.Context, opts Options) (func(context.Context) error, error) {
	if opts.ServiceName == "" {
		return nil, fmt.Errorf("telemetry: empty service name")
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(Sampler(opts.SampleRatio)),
		sdktrace.WithResource(newResource(opts)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown, nil
}
