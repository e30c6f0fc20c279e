package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

var _ ports.RouteService = (*RouteService)(nil)

// RouteService — маршруты интеграций на стороне API (без знаний о транспорте).
type RouteService struct {
	routes       ports.RouteRepository
	integrations ports.IntegrationRepository
	chains       ports.EscalationRepository
	validator    ports.RouteValidator
	publisher    ports.EventPublisher
	log          ports.Logger
}

// NewRouteService — DI-конструктор.
func NewRouteService(
	routes ports.RouteRepository,
	integrations ports.IntegrationRepository,
	chains ports.EscalationRepository,
	validator ports.RouteValidator,
	publisher ports.EventPublisher,
	log ports.Logger,
) *RouteService {
	return &RouteService{
		routes:       routes,
		integrations: integrations,
		chains:       chains,
		validator:    validator,
		publisher:    publisher,
		log:          log,
	}
}

// List — маршруты интеграции по порядку, default последний.
func (s *RouteService) List(ctx context.Context, integrationID string) ([]*domain.Route, error) {
	return s.routes.ListByIntegration(ctx, integrationID)
}

func (s *RouteService) Get(ctx context.Context, id string) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

// Create — новый маршрут встаёт прямо перед маршрутом по умолчанию.
func (s *RouteService) Create(ctx context.Context, draft *domain.RouteDraft) (*domain.Route, error) {
	if err := s.validator.ValidateDraft(ctx, draft); err != nil {
		s.log.Warnf(ctx, "route draft rejected integration=%s err=%v", draftIntegration(draft), err)
		return nil, err
	}
	if err := s.checkChain(ctx, draft.EscalationChainID); err != nil {
		return nil, err
	}

	route := &domain.Route{
		ID:                newID("R"),
		IntegrationID:     draft.IntegrationID,
		FilteringTerm:     draft.FilteringTerm,
		FilteringTermType: draft.FilteringTermType,
		EscalationChainID: draft.EscalationChainID,
		NotifyInSlack:     draft.NotifyInSlack,
		NotifyInTelegram:  draft.NotifyInTelegram,
	}
	created, err := s.routes.Create(ctx, route)
	if err != nil {
		s.log.Errorf(ctx, "routes.Create failed integration=%s err=%v", route.IntegrationID, err)
		return nil, err
	}

	s.log.Infof(ctx, "route created id=%s integration=%s order=%d", created.ID, created.IntegrationID, created.Order)
	publish(ctx, s.publisher, s.log, domain.EventRouteCreated, created.IntegrationID, created.ID)
	return created, nil
}

// Update — частичное обновление; у маршрута по умолчанию условие не меняется.
func (s *RouteService) Update(ctx context.Context, id string, patch *domain.RoutePatch) (*domain.Route, error) {
	current, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch == nil {
		return current, nil
	}
	if current.IsDefault && (patch.FilteringTerm != nil || patch.FilteringTermType != nil) {
		return nil, fmt.Errorf("%w: default route has no filtering term", domain.ErrValidation)
	}

	updated := patch.Apply(current)
	if err := s.validator.ValidateRoute(ctx, updated); err != nil {
		s.log.Warnf(ctx, "route update rejected id=%s err=%v", id, err)
		return nil, err
	}
	if !patch.ClearEscalationChain {
		if err := s.checkChain(ctx, patch.EscalationChainID); err != nil {
			return nil, err
		}
	}
	if err := s.routes.Update(ctx, updated); err != nil {
		s.log.Errorf(ctx, "routes.Update failed id=%s err=%v", id, err)
		return nil, err
	}

	publish(ctx, s.publisher, s.log, domain.EventRouteUpdated, updated.IntegrationID, updated.ID)
	return updated, nil
}

// Move — перенос маршрута на позицию position в порядке интеграции.
func (s *RouteService) Move(ctx context.Context, id string, position int) error {
	if position < 0 {
		return fmt.Errorf("%w: position must be non-negative", domain.ErrValidation)
	}
	moved, err := s.routes.Move(ctx, id, position)
	if err != nil {
		s.log.Warnf(ctx, "route move failed id=%s position=%d err=%v", id, position, err)
		return err
	}

	s.log.Infof(ctx, "route moved id=%s integration=%s position=%d", moved.ID, moved.IntegrationID, moved.Order)
	publish(ctx, s.publisher, s.log, domain.EventRouteMoved, moved.IntegrationID, moved.ID)
	return nil
}

// Delete — удаление маршрута; маршрут по умолчанию удалить нельзя.
func (s *RouteService) Delete(ctx context.Context, id string) error {
	route, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if route.IsDefault {
		return fmt.Errorf("%w: default route cannot be deleted", domain.ErrValidation)
	}
	if err := s.routes.Delete(ctx, id); err != nil {
		s.log.Errorf(ctx, "routes.Delete failed id=%s err=%v", id, err)
		return err
	}

	s.log.Infof(ctx, "route deleted id=%s integration=%s", id, route.IntegrationID)
	publish(ctx, s.publisher, s.log, domain.EventRouteDeleted, route.IntegrationID, id)
	return nil
}

// SendDemoAlert — демо-алерт через маршрут: счётчики интеграции растут на одну группу.
func (s *RouteService) SendDemoAlert(ctx context.Context, id string) error {
	route, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.integrations.IncrementCounters(ctx, route.IntegrationID, 1, 1); err != nil {
		s.log.Errorf(ctx, "IncrementCounters failed integration=%s err=%v", route.IntegrationID, err)
		return err
	}
	publish(ctx, s.publisher, s.log, domain.EventDemoAlert, route.IntegrationID, "")
	return nil
}

// ConvertToJinja2 — regex-условие превращается в эквивалентный jinja2-шаблон.
func (s *RouteService) ConvertToJinja2(ctx context.Context, id string) (*domain.Route, error) {
	route, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route.IsDefault || route.FilteringTermType != domain.FilteringTermRegex {
		return nil, fmt.Errorf("%w: only regex routes can be converted", domain.ErrValidation)
	}

	term := RegexToJinja2(route.FilteringTerm)
	typ := domain.FilteringTermJinja2
	return s.Update(ctx, id, &domain.RoutePatch{FilteringTerm: &term, FilteringTermType: &typ})
}

// RegexToJinja2 — jinja2-условие, истинное там же, где regex находит совпадение в payload.
func RegexToJinja2(regex string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(regex)
	return `{{ payload | json_dumps | regex_search("` + escaped + `") }}`
}

func (s *RouteService) checkChain(ctx context.Context, chainID *string) error {
	if chainID == nil || *chainID == "" {
		return nil
	}
	ok, err := s.chains.Exists(ctx, *chainID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: escalation chain %s does not exist", domain.ErrValidation, *chainID)
	}
	return nil
}

func draftIntegration(d *domain.RouteDraft) string {
	if d == nil {
		return ""
	}
	return d.IntegrationID
}
