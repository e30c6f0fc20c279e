// Package routeview — модели отображения маршрутов интеграции: формулировка условия,
// доступные кнопки, превью шаблона, выбор цепочки эскалации, сборка дерева.
package routeview

import (
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/templates"
)

// Wording — формулировка условия маршрута в списке.
type Wording string

const (
	WordingIf      Wording = "If"
	WordingElse    Wording = "Else"
	WordingDefault Wording = "Default"
)

const (
	// PreviewLimit — длина превью шаблона в рунах.
	PreviewLimit = 60

	GroupingHint = "If the Routing template evaluates to True, the alert will be grouped with the Grouping template and proceed to the following steps"

	TooltipEditChain = "Edit escalation chain"
	TooltipAddChain  = "Add an escalation chain"
)

// ConditionWording — Default для последнего маршрута, If для первого, Else для остальных.
func ConditionWording(total, index int) Wording {
	switch {
	case index == total-1:
		return WordingDefault
	case index == 0:
		return WordingIf
	default:
		return WordingElse
	}
}

// ButtonSet — доступные действия над маршрутом.
type ButtonSet struct {
	MoveUp   bool `json:"move_up"`
	MoveDown bool `json:"move_down"`
	Delete   bool `json:"delete"`
}

// Buttons — default-маршрут не двигается и не удаляется; вниз нельзя,
// если ниже только default. total — число маршрутов интеграции.
func Buttons(route *domain.Route, index, total int) ButtonSet {
	if route == nil || route.IsDefault {
		return ButtonSet{}
	}
	return ButtonSet{
		MoveUp:   index > 0,
		MoveDown: index < total-2,
		Delete:   true,
	}
}

// EditKind — какой редактор открывает кнопка правки условия.
type EditKind string

const (
	EditRegexp   EditKind = "regexp"
	EditTemplate EditKind = "template"
)

// EditAction — открыть редактор условия маршрута.
type EditAction struct {
	Kind     EditKind `json:"kind"`
	Template string   `json:"template,omitempty"`
	RouteID  string   `json:"route_id"`
}

// EditRoutingTemplate — regex-маршрут открывает редактор регулярного выражения,
// jinja2-маршрут — шаблон route_template этого маршрута.
func EditRoutingTemplate(route *domain.Route) EditAction {
	if route.FilteringTermType == domain.FilteringTermRegex {
		return EditAction{Kind: EditRegexp, RouteID: route.ID}
	}
	return EditAction{Kind: EditTemplate, Template: templates.RouteTemplate, RouteID: route.ID}
}

// ChainLink — ссылка на страницу цепочки эскалации.
type ChainLink struct {
	Query   string `json:"query"`
	Tooltip string `json:"tooltip"`
}

// EscalationChainLink — page=escalations и id выбранной цепочки, если она есть.
func EscalationChainLink(chainID *string) ChainLink {
	q := url.Values{"page": {"escalations"}}
	tooltip := TooltipAddChain
	if chainID != nil && *chainID != "" {
		q.Set("id", *chainID)
		tooltip = TooltipEditChain
	}
	return ChainLink{Query: q.Encode(), Tooltip: tooltip}
}

// Preview — первая строка шаблона, обрезанная до PreviewLimit рун.
func Preview(term string) string {
	line, _, cut := strings.Cut(strings.TrimSpace(term), "\n")
	line = strings.TrimRight(line, " \t\r")
	if utf8.RuneCountInString(line) <= PreviewLimit {
		if cut {
			return line + "…"
		}
		return line
	}
	runes := []rune(line)
	return string(runes[:PreviewLimit]) + "…"
}

// EscalationOption — вариант выбора цепочки эскалации.
type EscalationOption struct {
	Value string  `json:"value"`
	Label string  `json:"label"`
	Team  *string `json:"team"`
}

// EscalationOptions — варианты по алфавиту подписи (при равенстве — по id).
func EscalationOptions(chains []*domain.EscalationChain) []EscalationOption {
	out := make([]EscalationOption, 0, len(chains))
	for _, c := range chains {
		if c == nil {
			continue
		}
		out = append(out, EscalationOption{Value: c.ID, Label: c.Name, Team: c.TeamID})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Value < out[j].Value
	})
	return out
}
