package routeview

import "github.com/Gunvolt24/oncall_routes/internal/domain"

// Options — окружение отображения: установленные чаты и известные цепочки эскалации.
type Options struct {
	SlackInstalled    bool
	TelegramInstalled bool
	Chains            []*domain.EscalationChain
}

// ChatOps — публикация маршрута в установленные чаты.
type ChatOps struct {
	Slack    *bool `json:"slack,omitempty"`
	Telegram *bool `json:"telegram,omitempty"`
}

// RouteView — всё, что нужно для отрисовки одного маршрута.
type RouteView struct {
	ID                  string     `json:"id"`
	Index               int        `json:"index"`
	IsDefault           bool       `json:"is_default"`
	Wording             Wording    `json:"wording"`
	TemplatePreview     string     `json:"template_preview,omitempty"`
	ShowTemplate        bool       `json:"show_template"`
	GroupingHint        string     `json:"grouping_hint,omitempty"`
	ChatOps             *ChatOps   `json:"chat_ops,omitempty"`
	EscalationChainID   string     `json:"escalation_chain,omitempty"`
	EscalationChainName string     `json:"escalation_chain_name,omitempty"`
	ChainLink           ChainLink  `json:"chain_link"`
	Buttons             ButtonSet  `json:"buttons"`
	Edit                EditAction `json:"edit"`
}

// NewRouteView — модель маршрута на позиции index из total.
func NewRouteView(route *domain.Route, index, total int, opts Options) RouteView {
	wording := ConditionWording(total, index)
	v := RouteView{
		ID:        route.ID,
		Index:     index,
		IsDefault: route.IsDefault,
		Wording:   wording,
		ChainLink: EscalationChainLink(route.EscalationChainID),
		Buttons:   Buttons(route, index, total),
		Edit:      EditRoutingTemplate(route),
	}
	if wording != WordingDefault {
		v.ShowTemplate = true
		v.TemplatePreview = Preview(route.FilteringTerm)
	}
	if index != total-1 {
		v.GroupingHint = GroupingHint
	}
	if opts.SlackInstalled || opts.TelegramInstalled {
		co := &ChatOps{}
		if opts.SlackInstalled {
			slack := route.NotifyInSlack
			co.Slack = &slack
		}
		if opts.TelegramInstalled {
			tg := route.NotifyInTelegram
			co.Telegram = &tg
		}
		v.ChatOps = co
	}
	if route.EscalationChainID != nil {
		v.EscalationChainID = *route.EscalationChainID
		for _, c := range opts.Chains {
			if c != nil && c.ID == v.EscalationChainID {
				v.EscalationChainName = c.Name
				break
			}
		}
	}
	return v
}

// Build — модели для упорядоченного списка маршрутов интеграции.
func Build(routes []*domain.Route, opts Options) []RouteView {
	out := make([]RouteView, 0, len(routes))
	for i, r := range routes {
		out = append(out, NewRouteView(r, i, len(routes), opts))
	}
	return out
}
