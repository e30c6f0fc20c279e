package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

const customButtonsCollection = "custom_buttons"

// ListCustomButtons — пользовательские действия интеграции.
func (c *Client) ListCustomButtons(ctx context.Context, integrationID string) ([]*domain.CustomButton, error) {
	params := url.Values{"alert_receive_channel": {integrationID}}
	var out []*domain.CustomButton
	if err := c.Request(ctx, http.MethodGet, "/"+customButtonsCollection+"/", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteCustomButton(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, itemPath(customButtonsCollection, id), nil, nil, nil)
}
