package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
)

func TestRequestIDFromContext(t *testing.T) {
	type foreignKey struct{}

	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{"stored", ctxmeta.WithRequestID(context.Background(), "req-123"), "req-123", true},
		{"background", context.Background(), "", false},
		{"nil", nil, "", false},
		{"empty stored value", context.WithValue(context.Background(), ctxmeta.KeyRequestID, ""), "", false},
		{"foreign key", context.WithValue(context.Background(), foreignKey{}, "req-xyz"), "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, ok := ctxmeta.RequestIDFromContext(tt.ctx)
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("got %q,%v want %q,%v", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestWithRequestID_NoOp(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("empty id must keep the parent context")
	}
	if ctx := ctxmeta.WithRequestID(nil, "req-1"); ctx != nil { //nolint:staticcheck // nil context is handled
		t.Fatalf("nil context must stay nil")
	}
}

func TestEnsureRequestID(t *testing.T) {
	ctx, id := ctxmeta.EnsureRequestID(context.Background())
	if got, ok := ctxmeta.RequestIDFromContext(ctx); !ok || got != id || id == "" {
		t.Fatalf("generated id must be in ctx: got=%q ok=%v id=%q", got, ok, id)
	}

	base := ctxmeta.WithRequestID(context.Background(), "req-keep")
	kept, id2 := ctxmeta.EnsureRequestID(base)
	if id2 != "req-keep" || kept != base {
		t.Fatalf("existing id must be kept, got %q", id2)
	}
}
