package validate

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

func TestValidateRouteDraftFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewRouteValidator()

	draft, err := ValidateRouteDraftFromJSON(ctx, validator, []byte(routeDraftJSON("I1", "severity=critical", 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.IntegrationID != "I1" || draft.FilteringTerm != "severity=critical" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestValidateRouteDraftFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewRouteValidator()

	raw := `{"unknown":"x",` + routeDraftJSON("I1", "a", 0)[1:]
	_, err := ValidateRouteDraftFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation in chain, got: %v", err)
	}
}

func TestValidateRouteDraftFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewRouteValidator()

	raw := routeDraftJSON("I1", "a", 0) + "{}"
	_, err := ValidateRouteDraftFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateRouteDraftFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewRouteValidator()

	// Не валиден: регулярное выражение не компилируется
	_, err := ValidateRouteDraftFromJSON(ctx, validator, []byte(routeDraftJSON("I1", "(", 0)))
	if !errors.Is(err, ErrInvalidRoute) {
		t.Fatalf("expected ErrInvalidRoute, got %v", err)
	}
}

// ---- helpers ----

func routeDraftJSON(integrationID, term string, termType int) string {
	return `{
  "alert_receive_channel": "` + integrationID + `",
  "filtering_term": ` + strconv.Quote(term) + `,
  "filtering_term_type": ` + strconv.Itoa(termType) + `,
  "notify_in_slack": true,
  "notify_in_telegram": false
}`
}
