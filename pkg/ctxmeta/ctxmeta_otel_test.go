//go:build otel
// +build otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceIDs_Otel(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	local, span := tp.Tracer("console").Start(context.Background(), "GET /integrations/:id/routes")
	defer span.End()

	remote := trace.ContextWithRemoteSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0xa1},
		SpanID:  trace.SpanID{0xb2},
		Remote:  true,
	}))

	tests := []struct {
		name      string
		ctx       context.Context
		wantTrace string
		wantSpan  string
		wantOK    bool
	}{
		{"local span", local, span.SpanContext().TraceID().String(), span.SpanContext().SpanID().String(), true},
		{"remote parent", remote, trace.TraceID{0xa1}.String(), trace.SpanID{0xb2}.String(), true},
		{"no span", context.Background(), "", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tid, ok := ctxmeta.TraceIDFromContext(tt.ctx)
			if ok != tt.wantOK || tid != tt.wantTrace {
				t.Fatalf("trace: got %q,%v want %q,%v", tid, ok, tt.wantTrace, tt.wantOK)
			}
			sid, ok := ctxmeta.SpanIDFromContext(tt.ctx)
			if ok != tt.wantOK || sid != tt.wantSpan {
				t.Fatalf("span: got %q,%v want %q,%v", sid, ok, tt.wantSpan, tt.wantOK)
			}
		})
	}
}
