package ports

import (
	"context"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

// RouteValidator — проверка условий маршрутов.
type RouteValidator interface {
	ValidateDraft(ctx context.Context, draft *domain.RouteDraft) error
	ValidateRoute(ctx context.Context, route *domain.Route) error
}

// IntegrationValidator — проверка данных интеграции.
type IntegrationValidator interface {
	Validate(ctx context.Context, draft *domain.IntegrationDraft) error
}
