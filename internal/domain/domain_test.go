package domain_test

import (
	"encoding/json"
	"errors"
	"slices"
	"sort"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

func TestMoveID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ids      []string
		from, to int
		want     []string
	}{
		{"first to last", []string{"a", "b", "c"}, 0, 2, []string{"b", "c", "a"}},
		{"last to first", []string{"a", "b", "c"}, 2, 0, []string{"c", "a", "b"}},
		{"middle up", []string{"a", "b", "c", "d"}, 2, 1, []string{"a", "c", "b", "d"}},
		{"middle down", []string{"a", "b", "c", "d"}, 1, 2, []string{"a", "c", "b", "d"}},
		{"same position", []string{"a", "b", "c"}, 1, 1, []string{"a", "b", "c"}},
		{"single", []string{"a"}, 0, 0, []string{"a"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := slices.Clone(tt.ids)
			got, err := domain.MoveID(src, tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("MoveID(%v,%d,%d) = %v, want %v", tt.ids, tt.from, tt.to, got, tt.want)
			}
			if !slices.Equal(src, tt.ids) {
				t.Fatalf("исходный срез изменён: %v", src)
			}
		})
	}
}

// Перемещение — всегда перестановка: тот же набор id и та же длина.
func TestMoveID_IsPermutation(t *testing.T) {
	t.Parallel()

	ids := []string{"r1", "r2", "r3", "r4", "r5"}
	for from := range ids {
		for to := range ids {
			got, err := domain.MoveID(ids, from, to)
			if err != nil {
				t.Fatalf("from=%d to=%d: %v", from, to, err)
			}
			if got[to] != ids[from] {
				t.Fatalf("from=%d to=%d: moved id at %d is %q", from, to, to, got[to])
			}
			sorted := slices.Clone(got)
			sort.Strings(sorted)
			if !slices.Equal(sorted, ids) {
				t.Fatalf("from=%d to=%d: not a permutation: %v", from, to, got)
			}
		}
	}
}

func TestMoveID_OutOfRange(t *testing.T) {
	t.Parallel()

	cases := [][2]int{{-1, 0}, {3, 0}, {0, 3}, {0, -2}}
	for _, c := range cases {
		if _, err := domain.MoveID([]string{"a", "b", "c"}, c[0], c[1]); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("MoveID(%d,%d): want ErrValidation, got %v", c[0], c[1], err)
		}
	}
	if _, err := domain.MoveID(nil, 0, 0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty sequence: want ErrValidation, got %v", err)
	}
}

func TestRoutePatch_JSON(t *testing.T) {
	t.Parallel()

	term := "severity=critical"
	p := domain.RoutePatch{FilteringTerm: &term, ClearEscalationChain: true}
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if v, ok := m["escalation_chain"]; !ok || v != nil {
		t.Fatalf("escalation_chain must be explicit null, got %v (present=%v)", v, ok)
	}
	if len(m) != 2 {
		t.Fatalf("only set fields expected, got %v", m)
	}

	var back domain.RoutePatch
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal patch: %v", err)
	}
	if !back.ClearEscalationChain || back.FilteringTerm == nil || *back.FilteringTerm != term {
		t.Fatalf("patch lost fields: %+v", back)
	}

	if err := json.Unmarshal([]byte(`{"order": 3}`), &back); err == nil {
		t.Fatalf("unknown field must be rejected")
	}
}

func TestRoutePatch_Apply(t *testing.T) {
	t.Parallel()

	chain := "E1"
	r := &domain.Route{ID: "R1", FilteringTerm: "a", EscalationChainID: &chain}

	newChain := "E2"
	out := (&domain.RoutePatch{EscalationChainID: &newChain}).Apply(r)
	if *out.EscalationChainID != "E2" || *r.EscalationChainID != "E1" {
		t.Fatalf("apply must not touch the source: src=%v out=%v", *r.EscalationChainID, *out.EscalationChainID)
	}

	cleared := (&domain.RoutePatch{ClearEscalationChain: true}).Apply(r)
	if cleared.EscalationChainID != nil {
		t.Fatalf("chain must be cleared")
	}
}

func TestChangeEvent_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ev      domain.ChangeEvent
		wantErr bool
	}{
		{"route ok", domain.ChangeEvent{Kind: domain.EventRouteMoved, IntegrationID: "I1", RouteID: "R1"}, false},
		{"route without id", domain.ChangeEvent{Kind: domain.EventRouteDeleted, IntegrationID: "I1"}, true},
		{"integration ok", domain.ChangeEvent{Kind: domain.EventIntegrationUpdated, IntegrationID: "I1"}, false},
		{"no integration", domain.ChangeEvent{Kind: domain.EventDemoAlert}, true},
		{"unknown kind", domain.ChangeEvent{Kind: "boom", IntegrationID: "I1"}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.ev.Validate()
			if tt.wantErr && !errors.Is(err, domain.ErrInvalidEvent) {
				t.Fatalf("want ErrInvalidEvent, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
	if !errors.Is(domain.ErrInvalidEvent, domain.ErrValidation) {
		t.Fatalf("ErrInvalidEvent must wrap ErrValidation")
	}
}
