package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// FilteringTermType — синтаксис условия маршрута.
type FilteringTermType int

const (
	FilteringTermRegex  FilteringTermType = 0 // регулярное выражение
	FilteringTermJinja2 FilteringTermType = 1 // jinja2-шаблон
)

// Route — маршрут интеграции (channel filter): условие, по которому алерт
// попадает в цепочку эскалации. Маршруты интеграции упорядочены, default всегда последний.
type Route struct {
	ID                string            `json:"id"`
	IntegrationID     string            `json:"alert_receive_channel"`
	Order             int               `json:"order"`
	FilteringTerm     string            `json:"filtering_term"`
	FilteringTermType FilteringTermType `json:"filtering_term_type"`
	IsDefault         bool              `json:"is_default"`
	EscalationChainID *string           `json:"escalation_chain"`
	NotifyInSlack     bool              `json:"notify_in_slack"`
	NotifyInTelegram  bool              `json:"notify_in_telegram"`
	SlackChannelID    *string           `json:"slack_channel"`
	TelegramChannelID *string           `json:"telegram_channel"`
	CreatedAt         time.Time         `json:"created_at"`
}

// EntityID — ключ маршрута в кэше.
func (r *Route) EntityID() string { return r.ID }

// Clone — глубокая копия (указатели на строки тоже копируются).
func (r *Route) Clone() *Route {
	if r == nil {
		return nil
	}
	c := *r
	c.EscalationChainID = cloneStr(r.EscalationChainID)
	c.SlackChannelID = cloneStr(r.SlackChannelID)
	c.TelegramChannelID = cloneStr(r.TelegramChannelID)
	return &c
}

// RouteDraft — данные для создания маршрута.
type RouteDraft struct {
	IntegrationID     string            `json:"alert_receive_channel"`
	FilteringTerm     string            `json:"filtering_term"`
	FilteringTermType FilteringTermType `json:"filtering_term_type"`
	EscalationChainID *string           `json:"escalation_chain,omitempty"`
	NotifyInSlack     bool              `json:"notify_in_slack"`
	NotifyInTelegram  bool              `json:"notify_in_telegram"`
}

// RoutePatch — частичное обновление маршрута; nil означает «не менять».
// ClearEscalationChain снимает цепочку (на проводе — "escalation_chain": null).
type RoutePatch struct {
	FilteringTerm        *string
	FilteringTermType    *FilteringTermType
	EscalationChainID    *string
	ClearEscalationChain bool
	NotifyInSlack        *bool
	NotifyInTelegram     *bool
	SlackChannelID       *string
	TelegramChannelID    *string
}

// MarshalJSON — в JSON попадают только заданные поля.
func (p RoutePatch) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 8)
	if p.FilteringTerm != nil {
		m["filtering_term"] = *p.FilteringTerm
	}
	if p.FilteringTermType != nil {
		m["filtering_term_type"] = *p.FilteringTermType
	}
	switch {
	case p.ClearEscalationChain:
		m["escalation_chain"] = nil
	case p.EscalationChainID != nil:
		m["escalation_chain"] = *p.EscalationChainID
	}
	if p.NotifyInSlack != nil {
		m["notify_in_slack"] = *p.NotifyInSlack
	}
	if p.NotifyInTelegram != nil {
		m["notify_in_telegram"] = *p.NotifyInTelegram
	}
	if p.SlackChannelID != nil {
		m["slack_channel"] = *p.SlackChannelID
	}
	if p.TelegramChannelID != nil {
		m["telegram_channel"] = *p.TelegramChannelID
	}
	return json.Marshal(m)
}

// UnmarshalJSON — неизвестные поля отклоняются; "escalation_chain": null снимает цепочку.
func (p *RoutePatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = RoutePatch{}
	for key, val := range raw {
		var err error
		switch key {
		case "filtering_term":
			err = json.Unmarshal(val, &p.FilteringTerm)
		case "filtering_term_type":
			err = json.Unmarshal(val, &p.FilteringTermType)
		case "escalation_chain":
			if string(val) == "null" {
				p.ClearEscalationChain = true
				continue
			}
			err = json.Unmarshal(val, &p.EscalationChainID)
		case "notify_in_slack":
			err = json.Unmarshal(val, &p.NotifyInSlack)
		case "notify_in_telegram":
			err = json.Unmarshal(val, &p.NotifyInTelegram)
		case "slack_channel":
			err = json.Unmarshal(val, &p.SlackChannelID)
		case "telegram_channel":
			err = json.Unmarshal(val, &p.TelegramChannelID)
		default:
			err = fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return fmt.Errorf("route patch %s: %w", key, err)
		}
	}
	return nil
}

// Apply — применяет патч к копии маршрута и возвращает её.
func (p *RoutePatch) Apply(r *Route) *Route {
	out := r.Clone()
	if p == nil || out == nil {
		return out
	}
	if p.FilteringTerm != nil {
		out.FilteringTerm = *p.FilteringTerm
	}
	if p.FilteringTermType != nil {
		out.FilteringTermType = *p.FilteringTermType
	}
	if p.ClearEscalationChain {
		out.EscalationChainID = nil
	} else if p.EscalationChainID != nil {
		out.EscalationChainID = cloneStr(p.EscalationChainID)
	}
	if p.NotifyInSlack != nil {
		out.NotifyInSlack = *p.NotifyInSlack
	}
	if p.NotifyInTelegram != nil {
		out.NotifyInTelegram = *p.NotifyInTelegram
	}
	if p.SlackChannelID != nil {
		out.SlackChannelID = cloneStr(p.SlackChannelID)
	}
	if p.TelegramChannelID != nil {
		out.TelegramChannelID = cloneStr(p.TelegramChannelID)
	}
	return out
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
