package gateway

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

var _ ports.EscalationGateway = (*Client)(nil)

func (c *Client) ListEscalationChains(ctx context.Context) ([]*domain.EscalationChain, error) {
	var out []*domain.EscalationChain
	if err := c.Request(ctx, http.MethodGet, "/escalation_chains/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEscalationChain(ctx context.Context, name string, teamID *string) (*domain.EscalationChain, error) {
	body := map[string]any{"name": name, "team": teamID}
	var out domain.EscalationChain
	if err := c.Request(ctx, http.MethodPost, "/escalation_chains/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
