package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/validate"
)

func validDraft() *domain.RouteDraft {
	return &domain.RouteDraft{
		IntegrationID:     "I1",
		FilteringTerm:     `severity=(critical|high)`,
		FilteringTermType: domain.FilteringTermRegex,
	}
}

func TestRouteValidator_ValidateDraft(t *testing.T) {
	v := validate.NewRouteValidator()
	ctx := context.Background()

	t.Run("valid regex draft", func(t *testing.T) {
		if err := v.ValidateDraft(ctx, validDraft()); err != nil {
			t.Fatalf("expected valid draft, got: %v", err)
		}
	})

	t.Run("valid jinja2 draft", func(t *testing.T) {
		d := validDraft()
		d.FilteringTerm = `{{ payload | json_dumps | regex_search("critical") }}`
		d.FilteringTermType = domain.FilteringTermJinja2
		if err := v.ValidateDraft(ctx, d); err != nil {
			t.Fatalf("expected valid draft, got: %v", err)
		}
	})

	type testCase struct {
		name      string
		makeDraft func() *domain.RouteDraft
		msg       string
	}

	cases := []testCase{
		{
			name:      "nil draft",
			makeDraft: func() *domain.RouteDraft { return nil },
			msg:       "маршрут не может быть nil",
		},
		{
			name: "empty integration",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.IntegrationID = " "
				return d
			},
			msg: "alert_receive_channel обязателен",
		},
		{
			name: "empty term",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.FilteringTerm = ""
				return d
			},
			msg: "filtering_term обязателен",
		},
		{
			name: "too long term",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.FilteringTerm = strings.Repeat("a", validate.MaxFilteringTermLen+1)
				return d
			},
			msg: "длиннее",
		},
		{
			name: "broken regex",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.FilteringTerm = "severity=("
				return d
			},
			msg: "не является регулярным выражением",
		},
		{
			name: "unclosed jinja2",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.FilteringTerm = "{{ payload.severity"
				d.FilteringTermType = domain.FilteringTermJinja2
				return d
			},
			msg: "не закрыт",
		},
		{
			name: "mismatched jinja2",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.FilteringTerm = "{% if payload }}"
				d.FilteringTermType = domain.FilteringTermJinja2
				return d
			},
			msg: "непарный",
		},
		{
			name: "jinja2 without expression",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.FilteringTerm = "plain text"
				d.FilteringTermType = domain.FilteringTermJinja2
				return d
			},
			msg: "нет выражения",
		},
		{
			name: "unknown term type",
			makeDraft: func() *domain.RouteDraft {
				d := validDraft()
				d.FilteringTermType = 7
				return d
			},
			msg: "filtering_term_type",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateDraft(ctx, tc.makeDraft())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidRoute) || !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrInvalidRoute and ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("expected error message to contain %q, got %q", tc.msg, err.Error())
			}
		})
	}
}

func TestRouteValidator_ValidateRoute_DefaultHasNoTerm(t *testing.T) {
	v := validate.NewRouteValidator()
	ctx := context.Background()

	if err := v.ValidateRoute(ctx, &domain.Route{ID: "R0", IsDefault: true}); err != nil {
		t.Fatalf("default route must be valid without a term: %v", err)
	}
	if err := v.ValidateRoute(ctx, &domain.Route{ID: "R1"}); !errors.Is(err, validate.ErrInvalidRoute) {
		t.Fatalf("non-default route without term: want ErrInvalidRoute, got %v", err)
	}
}

func TestIntegrationValidator_Validate(t *testing.T) {
	v := validate.NewIntegrationValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   *domain.IntegrationDraft
		wantErr bool
	}{
		{"ok", &domain.IntegrationDraft{VerbalName: "Prod alerts", Kind: "alertmanager"}, false},
		{"nil", nil, true},
		{"empty name", &domain.IntegrationDraft{VerbalName: "  ", Kind: "webhook"}, true},
		{"long name", &domain.IntegrationDraft{VerbalName: strings.Repeat("n", 151), Kind: "webhook"}, true},
		{"unknown kind", &domain.IntegrationDraft{VerbalName: "x", Kind: "pager"}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft)
			if tt.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, validate.ErrInvalidIntegration) {
				t.Fatalf("want ErrInvalidIntegration, got %v", err)
			}
		})
	}
}
