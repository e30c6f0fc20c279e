package domain

// EscalationChain — цепочка эскалации, на которую ссылается маршрут.
type EscalationChain struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	TeamID *string `json:"team"`
}

// EntityID — ключ цепочки в кэше.
func (e *EscalationChain) EntityID() string { return e.ID }

// Clone — копия цепочки.
func (e *EscalationChain) Clone() *EscalationChain {
	if e == nil {
		return nil
	}
	c := *e
	c.TeamID = cloneStr(e.TeamID)
	return &c
}

// Templates — шаблоны уведомлений интеграции: имя шаблона → тело (nil — не задан).
type Templates map[string]*string

// Clone — копия набора шаблонов.
func (t Templates) Clone() Templates {
	if t == nil {
		return nil
	}
	out := make(Templates, len(t))
	for k, v := range t {
		out[k] = cloneStr(v)
	}
	return out
}
