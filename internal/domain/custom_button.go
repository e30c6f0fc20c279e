package domain

// CustomButton — пользовательское действие (исходящий вебхук) интеграции.
type CustomButton struct {
	ID                  string  `json:"id"`
	IntegrationID       string  `json:"alert_receive_channel"`
	Name                string  `json:"name"`
	Webhook             string  `json:"webhook"`
	Data                *string `json:"data"`
	ForwardWholePayload bool    `json:"forward_whole_payload"`
}

// Clone — копия кнопки.
func (b *CustomButton) Clone() *CustomButton {
	if b == nil {
		return nil
	}
	c := *b
	c.Data = cloneStr(b.Data)
	return &c
}

// CustomButtonDraft — данные для создания кнопки.
type CustomButtonDraft struct {
	IntegrationID       string  `json:"alert_receive_channel"`
	Name                string  `json:"name"`
	Webhook             string  `json:"webhook"`
	Data                *string `json:"data,omitempty"`
	ForwardWholePayload bool    `json:"forward_whole_payload"`
}

// TemplatePreviewRequest — отрисовка шаблона уведомления на пробном payload.
type TemplatePreviewRequest struct {
	TemplateName string         `json:"template_name"`
	TemplateBody string         `json:"template_body"`
	Payload      map[string]any `json:"payload"`
}

// TemplatePreview — результат отрисовки.
type TemplatePreview struct {
	Preview string `json:"preview"`
}
