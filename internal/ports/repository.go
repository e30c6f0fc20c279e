package ports

import (
	"context"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

// RouteRepository — хранилище маршрутов эталонного API.
// Требования к реализации: позиции внутри интеграции непрерывны, default — последний.
type RouteRepository interface {
	ListByIntegration(ctx context.Context, integrationID string) ([]*domain.Route, error)
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	Update(ctx context.Context, route *domain.Route) error
	Move(ctx context.Context, id string, position int) (*domain.Route, error)
	Delete(ctx context.Context, id string) error
}

// IntegrationRepository — хранилище интеграций, счётчиков и шаблонов.
type IntegrationRepository interface {
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Integration, int, error)
	GetByID(ctx context.Context, id string) (*domain.Integration, error)
	Create(ctx context.Context, integration *domain.Integration, defaultRoute *domain.Route) error
	Update(ctx context.Context, integration *domain.Integration) error
	Delete(ctx context.Context, id string) error
	Counters(ctx context.Context) (map[string]domain.Counters, error)
	IncrementCounters(ctx context.Context, id string, alerts, groups int) error
	GetTemplates(ctx context.Context, id string) (domain.Templates, error)
	SaveTemplates(ctx context.Context, id string, templates domain.Templates) error
}

// CustomButtonRepository — пользовательские действия; удаляются вместе с интеграцией.
type CustomButtonRepository interface {
	ListByIntegration(ctx context.Context, integrationID string) ([]*domain.CustomButton, error)
	Create(ctx context.Context, button *domain.CustomButton) error
	Delete(ctx context.Context, id string) error
}

// EscalationRepository — хранилище цепочек эскалации.
type EscalationRepository interface {
	List(ctx context.Context) ([]*domain.EscalationChain, error)
	Create(ctx context.Context, chain *domain.EscalationChain) error
	Exists(ctx context.Context, id string) (bool, error)
}

// HealthChecker — проверка готовности хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
