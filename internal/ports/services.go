package ports

import (
	"context"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

// RouteService — операции эталонного API над маршрутами.
type RouteService interface {
	List(ctx context.Context, integrationID string) ([]*domain.Route, error)
	Get(ctx context.Context, id string) (*domain.Route, error)
	Create(ctx context.Context, draft *domain.RouteDraft) (*domain.Route, error)
	Update(ctx context.Context, id string, patch *domain.RoutePatch) (*domain.Route, error)
	Move(ctx context.Context, id string, position int) error
	Delete(ctx context.Context, id string) error
	SendDemoAlert(ctx context.Context, id string) error
	ConvertToJinja2(ctx context.Context, id string) (*domain.Route, error)
}

// IntegrationService — операции эталонного API над интеграциями.
type IntegrationService interface {
	List(ctx context.Context, search string) ([]*domain.Integration, error)
	Search(ctx context.Context, search string, page, pageSize int) (*domain.IntegrationPage, error)
	Get(ctx context.Context, id string) (*domain.Integration, error)
	Create(ctx context.Context, draft *domain.IntegrationDraft) (*domain.Integration, error)
	Update(ctx context.Context, id string, draft *domain.IntegrationDraft) (*domain.Integration, error)
	Delete(ctx context.Context, id string) error
	Counters(ctx context.Context) (map[string]domain.Counters, error)
	ChangeTeam(ctx context.Context, id, teamID string) error
	SendDemoAlert(ctx context.Context, id string, payload map[string]any) error
	Templates(ctx context.Context, id string) (domain.Templates, error)
	SaveTemplates(ctx context.Context, id string, templates domain.Templates) (domain.Templates, error)
	PreviewTemplate(ctx context.Context, id string, req *domain.TemplatePreviewRequest) (*domain.TemplatePreview, error)
}

// CustomButtonService — пользовательские действия интеграций.
type CustomButtonService interface {
	List(ctx context.Context, integrationID string) ([]*domain.CustomButton, error)
	Create(ctx context.Context, draft *domain.CustomButtonDraft) (*domain.CustomButton, error)
	Delete(ctx context.Context, id string) error
}

// EscalationService — операции эталонного API над цепочками эскалации.
type EscalationService interface {
	List(ctx context.Context) ([]*domain.EscalationChain, error)
	Create(ctx context.Context, name string, teamID *string) (*domain.EscalationChain, error)
}
