package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

var _ ports.RouteGateway = (*Client)(nil)

const routesCollection = "channel_filters"

func (c *Client) ListRoutes(ctx context.Context, integrationID string) ([]*domain.Route, error) {
	var out []*domain.Route
	params := url.Values{"alert_receive_channel": {integrationID}}
	if err := c.Request(ctx, http.MethodGet, "/"+routesCollection+"/", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	var out domain.Route
	if err := c.Request(ctx, http.MethodGet, itemPath(routesCollection, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRoute(ctx context.Context, draft *domain.RouteDraft) (*domain.Route, error) {
	var out domain.Route
	if err := c.Request(ctx, http.MethodPost, "/"+routesCollection+"/", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRoute(ctx context.Context, id string, patch *domain.RoutePatch) (*domain.Route, error) {
	var out domain.Route
	if err := c.Request(ctx, http.MethodPut, itemPath(routesCollection, id), nil, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoveRoute — перенос маршрута на позицию position (индекс назначения).
func (c *Client) MoveRoute(ctx context.Context, id string, position int) error {
	params := url.Values{"position": {strconv.Itoa(position)}}
	return c.Request(ctx, http.MethodPut, itemPath(routesCollection, id)+"move_to_position/", params, nil, nil)
}

func (c *Client) DeleteRoute(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, itemPath(routesCollection, id), nil, nil, nil)
}

func (c *Client) SendRouteDemoAlert(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodPost, itemPath(routesCollection, id)+"send_demo_alert/", nil, nil, nil)
}

// ConvertRouteToJinja2 — сервер переписывает regex-условие в jinja2 и возвращает маршрут.
func (c *Client) ConvertRouteToJinja2(ctx context.Context, id string) (*domain.Route, error) {
	var out domain.Route
	if err := c.Request(ctx, http.MethodPost, itemPath(routesCollection, id)+"convert_from_regex_to_jinja2/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
