package validate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

// Проверка, что RouteValidator удовлетворяет интерфейсу RouteValidator.
var _ ports.RouteValidator = (*RouteValidator)(nil)

// ErrInvalidRoute — базовая ошибка валидации маршрута (оборачивает domain.ErrValidation).
var ErrInvalidRoute = fmt.Errorf("%w: route", domain.ErrValidation)

// MaxFilteringTermLen — предельная длина условия маршрута в символах.
const MaxFilteringTermLen = 1024

// RouteValidator — проверка условий маршрутов.
type RouteValidator struct{}

// NewRouteValidator — конструктор RouteValidator.
// Возвращает ErrInvalidRoute (с обёрнутой причиной) при любой проблеме.
func NewRouteValidator() *RouteValidator { return &RouteValidator{} }

// ValidateDraft — проверка данных для создания маршрута.
func (v *RouteValidator) ValidateDraft(_ context.Context, draft *domain.RouteDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: маршрут не может быть nil", ErrInvalidRoute)
	}
	if strings.TrimSpace(draft.IntegrationID) == "" {
		return fmt.Errorf("%w: alert_receive_channel обязателен", ErrInvalidRoute)
	}
	return v.validateTerm(draft.FilteringTerm, draft.FilteringTermType)
}

// ValidateRoute — проверка маршрута целиком (после применения патча).
// У маршрута по умолчанию условия нет.
func (v *RouteValidator) ValidateRoute(_ context.Context, route *domain.Route) error {
	if route == nil {
		return fmt.Errorf("%w: маршрут не может быть nil", ErrInvalidRoute)
	}
	if route.IsDefault {
		return nil
	}
	return v.validateTerm(route.FilteringTerm, route.FilteringTermType)
}

func (v *RouteValidator) validateTerm(term string, typ domain.FilteringTermType) error {
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("%w: filtering_term обязателен", ErrInvalidRoute)
	}
	if utf8.RuneCountInString(term) > MaxFilteringTermLen {
		return fmt.Errorf("%w: filtering_term длиннее %d символов", ErrInvalidRoute, MaxFilteringTermLen)
	}

	switch typ {
	case domain.FilteringTermRegex:
		if _, err := regexp.Compile(term); err != nil {
			return fmt.Errorf("%w: filtering_term не является регулярным выражением: %v", ErrInvalidRoute, err)
		}
	case domain.FilteringTermJinja2:
		if err := checkJinja2Delimiters(term); err != nil {
			return fmt.Errorf("%w: filtering_term: %v", ErrInvalidRoute, err)
		}
	default:
		return fmt.Errorf("%w: filtering_term_type должен быть 0 (regex) или 1 (jinja2)", ErrInvalidRoute)
	}
	return nil
}

// checkJinja2Delimiters — парность {{ }} и {% %}; вложенность не допускается.
func checkJinja2Delimiters(term string) error {
	var open string
	for i := 0; i+1 < len(term); i++ {
		pair := term[i : i+2]
		switch pair {
		case "{{", "{%":
			if open != "" {
				return fmt.Errorf("вложенный %q на позиции %d", pair, i)
			}
			open = pair
			i++
		case "}}", "%}":
			if open == "" || (open == "{{") != (pair == "}}") {
				return fmt.Errorf("непарный %q на позиции %d", pair, i)
			}
			open = ""
			i++
		}
	}
	if open != "" {
		return errors.New("не закрыт " + open)
	}
	if !strings.Contains(term, "{{") && !strings.Contains(term, "{%") {
		return errors.New("нет выражения {{ }} или {% %}")
	}
	return nil
}
