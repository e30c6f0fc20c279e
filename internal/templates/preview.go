package templates

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

// expr — подстановка {{ ... }}; операторы {% ... %} не поддерживаются и остаются как есть.
var expr = regexp.MustCompile(`\{\{\s*(.*?)\s*\}\}`)

// payloadPath — payload или payload.a.b; ключи — идентификаторы.
var payloadPath = regexp.MustCompile(`^payload(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Render — предпросмотр шаблона: подставляет {{ payload }} и {{ payload.path }}.
// Отсутствующий путь даёт пустую строку, прочие выражения остаются без изменений.
// Несбалансированные скобки — ошибка валидации.
func Render(body string, payload map[string]any) (string, error) {
	if strings.Count(body, "{{") != strings.Count(body, "}}") {
		return "", fmt.Errorf("%w: unbalanced {{ }} in template", domain.ErrValidation)
	}
	return expr.ReplaceAllStringFunc(body, func(m string) string {
		path := expr.FindStringSubmatch(m)[1]
		if !payloadPath.MatchString(path) {
			return m
		}
		v, ok := lookupPath(payload, strings.Split(path, ".")[1:])
		if !ok {
			return ""
		}
		return formatValue(v)
	}), nil
}

func lookupPath(payload map[string]any, keys []string) (any, bool) {
	if payload == nil {
		return nil, false
	}
	var cur any = payload
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case map[string]any, []any:
		raw, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return fmt.Sprint(x)
	}
}
