//go:build otel && !gopls

package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceIDFromContext — trace id активного спана (сборка с тегом otel).
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpan(ctx)
	if !ok {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span id активного спана.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpan(ctx)
	if !ok {
		return "", false
	}
	return sc.SpanID().String(), true
}

// activeSpan — span context из ctx; невалидный (noop-трейсер, нет спана) не считается.
func activeSpan(ctx context.Context) (trace.SpanContext, bool) {
	sc := trace.SpanContextFromContext(ctx)
	return sc, sc.IsValid()
}
