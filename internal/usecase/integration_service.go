package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/internal/templates"
)

var _ ports.IntegrationService = (*IntegrationService)(nil)

// DefaultPageSize — размер страницы поиска интеграций.
const DefaultPageSize = 50

// IntegrationService — интеграции, их счётчики и шаблоны.
type IntegrationService struct {
	repo      ports.IntegrationRepository
	validator ports.IntegrationValidator
	publisher ports.EventPublisher
	log       ports.Logger
	emailHost string
}

// NewIntegrationService — DI-конструктор. emailHost — домен адресов inbound_email.
func NewIntegrationService(
	repo ports.IntegrationRepository,
	validator ports.IntegrationValidator,
	publisher ports.EventPublisher,
	log ports.Logger,
	emailHost string,
) *IntegrationService {
	return &IntegrationService{repo: repo, validator: validator, publisher: publisher, log: log, emailHost: emailHost}
}

func (s *IntegrationService) List(ctx context.Context, search string) ([]*domain.Integration, error) {
	items, _, err := s.repo.List(ctx, strings.TrimSpace(search), 0, 0)
	return items, err
}

// Search — страница результатов; page считается с 1.
func (s *IntegrationService) Search(ctx context.Context, search string, page, pageSize int) (*domain.IntegrationPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	items, total, err := s.repo.List(ctx, strings.TrimSpace(search), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return &domain.IntegrationPage{Count: total, Page: page, Results: items}, nil
}

func (s *IntegrationService) Get(ctx context.Context, id string) (*domain.Integration, error) {
	return s.repo.GetByID(ctx, id)
}

// Create — интеграция создаётся вместе с маршрутом по умолчанию на позиции 0.
func (s *IntegrationService) Create(ctx context.Context, draft *domain.IntegrationDraft) (*domain.Integration, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		s.log.Warnf(ctx, "integration draft rejected err=%v", err)
		return nil, err
	}
	option, _ := domain.LookupIntegrationOption(draft.Kind)

	integration := &domain.Integration{
		ID:                  newID("C"),
		VerbalName:          strings.TrimSpace(draft.VerbalName),
		Kind:                draft.Kind,
		TeamID:              normalizeTeam(draft.TeamID),
		Description:         draft.Description,
		IsAbleToAutoresolve: option.IsAbleToAutoresolve,
	}
	if integration.Kind == "inbound_email" && s.emailHost != "" {
		integration.InboundEmail = strings.ToLower(integration.ID) + "@" + s.emailHost
	}
	defaultRoute := &domain.Route{
		ID:            newID("R"),
		IntegrationID: integration.ID,
		IsDefault:     true,
	}

	if err := s.repo.Create(ctx, integration, defaultRoute); err != nil {
		s.log.Errorf(ctx, "integrations.Create failed id=%s err=%v", integration.ID, err)
		return nil, err
	}
	s.log.Infof(ctx, "integration created id=%s kind=%s default_route=%s", integration.ID, integration.Kind, defaultRoute.ID)
	publish(ctx, s.publisher, s.log, domain.EventIntegrationCreated, integration.ID, "")
	return s.repo.GetByID(ctx, integration.ID)
}

// Update — имя, описание и команда; вид интеграции после создания не меняется.
func (s *IntegrationService) Update(ctx context.Context, id string, draft *domain.IntegrationDraft) (*domain.Integration, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return nil, err
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Kind != current.Kind {
		return nil, fmt.Errorf("%w: integration kind cannot be changed", domain.ErrValidation)
	}

	updated := current.Clone()
	updated.VerbalName = strings.TrimSpace(draft.VerbalName)
	updated.Description = draft.Description
	updated.TeamID = normalizeTeam(draft.TeamID)
	if err := s.repo.Update(ctx, updated); err != nil {
		s.log.Errorf(ctx, "integrations.Update failed id=%s err=%v", id, err)
		return nil, err
	}
	publish(ctx, s.publisher, s.log, domain.EventIntegrationUpdated, id, "")
	return updated, nil
}

func (s *IntegrationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof(ctx, "integration deleted id=%s", id)
	publish(ctx, s.publisher, s.log, domain.EventIntegrationDeleted, id, "")
	return nil
}

func (s *IntegrationService) Counters(ctx context.Context) (map[string]domain.Counters, error) {
	return s.repo.Counters(ctx)
}

// ChangeTeam — пустой teamID переносит интеграцию в «No team».
func (s *IntegrationService) ChangeTeam(ctx context.Context, id, teamID string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	updated := current.Clone()
	updated.TeamID = normalizeTeam(&teamID)
	if err := s.repo.Update(ctx, updated); err != nil {
		return err
	}
	publish(ctx, s.publisher, s.log, domain.EventIntegrationUpdated, id, "")
	return nil
}

// SendDemoAlert — демо-алерт: одна группа, один алерт.
func (s *IntegrationService) SendDemoAlert(ctx context.Context, id string, payload map[string]any) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.IncrementCounters(ctx, id, 1, 1); err != nil {
		s.log.Errorf(ctx, "IncrementCounters failed integration=%s err=%v", id, err)
		return err
	}
	s.log.Infof(ctx, "demo alert sent integration=%s custom_payload=%t", id, len(payload) > 0)
	publish(ctx, s.publisher, s.log, domain.EventDemoAlert, id, "")
	return nil
}

// Templates — все известные шаблоны интеграции; незаданные приходят как null.
func (s *IntegrationService) Templates(ctx context.Context, id string) (domain.Templates, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	stored, err := s.repo.GetTemplates(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make(domain.Templates, len(stored)+1)
	for _, name := range templates.Names() {
		out[name] = nil
	}
	for name, body := range stored {
		out[name] = body
	}
	return out, nil
}

// SaveTemplates — сохраняет переданные шаблоны; неизвестные имена отклоняются целиком.
func (s *IntegrationService) SaveTemplates(ctx context.Context, id string, t domain.Templates) (domain.Templates, error) {
	for name := range t {
		if !templates.IsKnown(name) {
			return nil, fmt.Errorf("%w: unknown template %q", domain.ErrValidation, name)
		}
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.SaveTemplates(ctx, id, t); err != nil {
		s.log.Errorf(ctx, "SaveTemplates failed integration=%s err=%v", id, err)
		return nil, err
	}
	publish(ctx, s.publisher, s.log, domain.EventTemplatesUpdated, id, "")
	return s.Templates(ctx, id)
}

// PreviewTemplate — отрисовка шаблона на пробном payload; шаблон не сохраняется.
func (s *IntegrationService) PreviewTemplate(ctx context.Context, id string, req *domain.TemplatePreviewRequest) (*domain.TemplatePreview, error) {
	if req == nil || !templates.IsKnown(req.TemplateName) {
		return nil, fmt.Errorf("%w: unknown template for preview", domain.ErrValidation)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	out, err := templates.Render(req.TemplateBody, req.Payload)
	if err != nil {
		return nil, err
	}
	return &domain.TemplatePreview{Preview: out}, nil
}

func normalizeTeam(teamID *string) *string {
	if teamID == nil {
		return nil
	}
	v := strings.TrimSpace(*teamID)
	if v == "" {
		return nil
	}
	return &v
}
