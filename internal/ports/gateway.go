package ports

import (
	"context"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

// RouteGateway — удалённый источник истины для маршрутов.
type RouteGateway interface {
	ListRoutes(ctx context.Context, integrationID string) ([]*domain.Route, error)
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
	CreateRoute(ctx context.Context, draft *domain.RouteDraft) (*domain.Route, error)
	UpdateRoute(ctx context.Context, id string, patch *domain.RoutePatch) (*domain.Route, error)
	MoveRoute(ctx context.Context, id string, position int) error
	DeleteRoute(ctx context.Context, id string) error
	SendRouteDemoAlert(ctx context.Context, id string) error
	ConvertRouteToJinja2(ctx context.Context, id string) (*domain.Route, error)
}

// IntegrationGateway — удалённый источник истины для интеграций и их шаблонов.
type IntegrationGateway interface {
	ListIntegrations(ctx context.Context, search string) ([]*domain.Integration, error)
	SearchIntegrations(ctx context.Context, search string, page int) (*domain.IntegrationPage, error)
	GetIntegration(ctx context.Context, id string) (*domain.Integration, error)
	CreateIntegration(ctx context.Context, draft *domain.IntegrationDraft) (*domain.Integration, error)
	UpdateIntegration(ctx context.Context, id string, draft *domain.IntegrationDraft) (*domain.Integration, error)
	DeleteIntegration(ctx context.Context, id string) error
	Counters(ctx context.Context) (map[string]domain.Counters, error)
	IntegrationOptions(ctx context.Context) ([]domain.IntegrationOption, error)
	ChangeTeam(ctx context.Context, id, teamID string) error
	SendDemoAlert(ctx context.Context, id string, payload map[string]any) error
	GetTemplates(ctx context.Context, id string) (domain.Templates, error)
	SaveTemplates(ctx context.Context, id string, templates domain.Templates) (domain.Templates, error)
	PreviewTemplate(ctx context.Context, id string, req *domain.TemplatePreviewRequest) (*domain.TemplatePreview, error)
	ListCustomButtons(ctx context.Context, integrationID string) ([]*domain.CustomButton, error)
	DeleteCustomButton(ctx context.Context, id string) error
}

// EscalationGateway — цепочки эскалации для выбора в маршруте.
type EscalationGateway interface {
	ListEscalationChains(ctx context.Context) ([]*domain.EscalationChain, error)
	CreateEscalationChain(ctx context.Context, name string, teamID *string) (*domain.EscalationChain, error)
}
