package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

var _ ports.IntegrationGateway = (*Client)(nil)

const (
	integrationsCollection = "alert_receive_channels"
	templatesCollection    = "alert_receive_channel_templates"
)

func (c *Client) ListIntegrations(ctx context.Context, search string) ([]*domain.Integration, error) {
	var out []*domain.Integration
	if err := c.Request(ctx, http.MethodGet, "/"+integrationsCollection+"/", searchParams(search), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchIntegrations — постраничный поиск; страницы нумеруются с 1.
func (c *Client) SearchIntegrations(ctx context.Context, search string, page int) (*domain.IntegrationPage, error) {
	if page < 1 {
		page = 1
	}
	params := searchParams(search)
	params.Set("page", strconv.Itoa(page))

	var out domain.IntegrationPage
	if err := c.Request(ctx, http.MethodGet, "/"+integrationsCollection+"/", params, nil, &out); err != nil {
		return nil, err
	}
	out.Page = page
	return &out, nil
}

func (c *Client) GetIntegration(ctx context.Context, id string) (*domain.Integration, error) {
	var out domain.Integration
	if err := c.Request(ctx, http.MethodGet, itemPath(integrationsCollection, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateIntegration(ctx context.Context, draft *domain.IntegrationDraft) (*domain.Integration, error) {
	var out domain.Integration
	if err := c.Request(ctx, http.MethodPost, "/"+integrationsCollection+"/", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateIntegration(ctx context.Context, id string, draft *domain.IntegrationDraft) (*domain.Integration, error) {
	var out domain.Integration
	if err := c.Request(ctx, http.MethodPut, itemPath(integrationsCollection, id), nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteIntegration(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, itemPath(integrationsCollection, id), nil, nil, nil)
}

// Counters — счётчики алертов по всем интеграциям: id → Counters.
func (c *Client) Counters(ctx context.Context) (map[string]domain.Counters, error) {
	out := map[string]domain.Counters{}
	if err := c.Request(ctx, http.MethodGet, "/"+integrationsCollection+"/counters/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) IntegrationOptions(ctx context.Context) ([]domain.IntegrationOption, error) {
	var out []domain.IntegrationOption
	if err := c.Request(ctx, http.MethodGet, "/"+integrationsCollection+"/integration_options/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ChangeTeam(ctx context.Context, id, teamID string) error {
	params := url.Values{"team_id": {teamID}}
	return c.Request(ctx, http.MethodPut, itemPath(integrationsCollection, id)+"change_team/", params, nil, nil)
}

// SendDemoAlert — демо-алерт; payload необязателен и уходит как demo_alert_payload.
func (c *Client) SendDemoAlert(ctx context.Context, id string, payload map[string]any) error {
	var body any
	if len(payload) > 0 {
		body = map[string]any{"demo_alert_payload": payload}
	}
	return c.Request(ctx, http.MethodPost, itemPath(integrationsCollection, id)+"send_demo_alert/", nil, body, nil)
}

func (c *Client) GetTemplates(ctx context.Context, id string) (domain.Templates, error) {
	out := domain.Templates{}
	if err := c.Request(ctx, http.MethodGet, itemPath(templatesCollection, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveTemplates(ctx context.Context, id string, templates domain.Templates) (domain.Templates, error) {
	out := domain.Templates{}
	if err := c.Request(ctx, http.MethodPut, itemPath(templatesCollection, id), nil, templates, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PreviewTemplate — сервер отрисовывает шаблон интеграции на переданном payload.
func (c *Client) PreviewTemplate(ctx context.Context, id string, req *domain.TemplatePreviewRequest) (*domain.TemplatePreview, error) {
	var out domain.TemplatePreview
	if err := c.Request(ctx, http.MethodPost, itemPath(integrationsCollection, id)+"preview_template/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func searchParams(search string) url.Values {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	return params
}
