package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewRouteValidator()

	line1 := oneLineJSONL(routeDraftJSON("I1", "env=prod", 0))
	line2 := oneLineJSONL(routeDraftJSON("I1", "", 0)) // пустое условие
	line3 := ""                                        // пустая строка — ок
	line4 := oneLineJSONL(routeDraftJSON("I2", `{{ payload.severity == "critical" }}`, 1))

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 2 || res.Invalid != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	if len(res.Rejected) != 1 || res.Rejected[0].Line != 2 {
		t.Fatalf("rejected: %+v", res.Rejected)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var d1, d2 domain.RouteDraft
	if err := json.Unmarshal([]byte(outLines[0]), &d1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &d2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	if d1.IntegrationID != "I1" || d2.IntegrationID != "I2" {
		t.Fatalf("unexpected output order: %s, %s", d1.IntegrationID, d2.IntegrationID)
	}
	if d2.FilteringTermType != domain.FilteringTermJinja2 {
		t.Fatalf("term type lost: %+v", d2)
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()
	validator := NewRouteValidator()

	// Строка > 64KB (буфер сканера по умолчанию), но условие в пределах лимита
	// за счёт длинного id интеграции.
	bigID := strings.Repeat("X", 200_000)
	raw := routeDraftJSON(bigID, "a|b", 0)

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(oneLineJSONL(raw)+"\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 1 || res.Invalid != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if strings.Count(strings.TrimSpace(out.String()), "\n")+1 != 1 {
		t.Fatalf("expected 1 output line")
	}
}

// ------ функции-помощники ------

func oneLineJSONL(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
