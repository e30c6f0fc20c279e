package domain

import "time"

// Integration — интеграция (alert receive channel), родитель для маршрутов.
type Integration struct {
	ID                  string     `json:"id"`
	VerbalName          string     `json:"verbal_name"`
	Kind                string     `json:"integration"`
	TeamID              *string    `json:"team"`
	Description         string     `json:"description"`
	InboundEmail        string     `json:"inbound_email,omitempty"`
	IsAbleToAutoresolve bool       `json:"is_able_to_autoresolve"`
	CreatedAt           time.Time  `json:"created_at"`
	Heartbeat           *Heartbeat `json:"heartbeat,omitempty"`
}

// EntityID — ключ интеграции в кэше.
func (i *Integration) EntityID() string { return i.ID }

// Clone — копия интеграции.
func (i *Integration) Clone() *Integration {
	if i == nil {
		return nil
	}
	c := *i
	c.TeamID = cloneStr(i.TeamID)
	if i.Heartbeat != nil {
		hb := *i.Heartbeat
		c.Heartbeat = &hb
	}
	return &c
}

// Heartbeat — heartbeat-монитор интеграции. Сервер отдаёт его вложенным в интеграцию;
// клиент хранит его отдельно, по id интеграции.
type Heartbeat struct {
	ID              string     `json:"id"`
	TimeoutSeconds  int        `json:"timeout_seconds"`
	LastHeartbeatAt *time.Time `json:"last_heartbeat_time,omitempty"`
	Status          bool       `json:"status"`
}

// IntegrationDraft — данные для создания/изменения интеграции.
type IntegrationDraft struct {
	VerbalName  string  `json:"verbal_name"`
	Kind        string  `json:"integration"`
	TeamID      *string `json:"team,omitempty"`
	Description string  `json:"description"`
}

// IntegrationOption — вид интеграции, доступный для создания.
type IntegrationOption struct {
	Value               string `json:"value"`
	DisplayName         string `json:"display_name"`
	IsAbleToAutoresolve bool   `json:"is_able_to_autoresolve"`
}

// Counters — агрегаты по интеграции, зависящие от её маршрутов и алертов.
type Counters struct {
	AlertsCount      int `json:"alerts_count"`
	AlertGroupsCount int `json:"alert_groups_count"`
}

// IntegrationPage — страница результатов поиска интеграций.
type IntegrationPage struct {
	Count   int            `json:"count"`
	Page    int            `json:"page"`
	Results []*Integration `json:"results"`
}

// IntegrationOptions — поддерживаемые виды интеграций.
func IntegrationOptions() []IntegrationOption {
	return []IntegrationOption{
		{Value: "grafana_alerting", DisplayName: "Grafana Alerting", IsAbleToAutoresolve: true},
		{Value: "alertmanager", DisplayName: "Alertmanager", IsAbleToAutoresolve: true},
		{Value: "webhook", DisplayName: "Webhook", IsAbleToAutoresolve: true},
		{Value: "formatted_webhook", DisplayName: "Formatted webhook", IsAbleToAutoresolve: true},
		{Value: "inbound_email", DisplayName: "Inbound Email", IsAbleToAutoresolve: false},
		{Value: "manual", DisplayName: "Manual", IsAbleToAutoresolve: false},
	}
}

// LookupIntegrationOption — ищет вид интеграции по значению.
func LookupIntegrationOption(kind string) (IntegrationOption, bool) {
	for _, o := range IntegrationOptions() {
		if o.Value == kind {
			return o, true
		}
	}
	return IntegrationOption{}, false
}
