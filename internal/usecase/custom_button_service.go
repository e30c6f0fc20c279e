package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

var _ ports.CustomButtonService = (*CustomButtonService)(nil)

// CustomButtonService — пользовательские действия (исходящие вебхуки) интеграций.
type CustomButtonService struct {
	repo         ports.CustomButtonRepository
	integrations ports.IntegrationRepository
	log          ports.Logger
}

func NewCustomButtonService(
	repo ports.CustomButtonRepository,
	integrations ports.IntegrationRepository,
	log ports.Logger,
) *CustomButtonService {
	return &CustomButtonService{repo: repo, integrations: integrations, log: log}
}

// List — действия интеграции в порядке создания; неизвестная интеграция — NotFound.
func (s *CustomButtonService) List(ctx context.Context, integrationID string) ([]*domain.CustomButton, error) {
	if _, err := s.integrations.GetByID(ctx, integrationID); err != nil {
		return nil, err
	}
	return s.repo.ListByIntegration(ctx, integrationID)
}

// Create — имя обязательно, webhook — абсолютный http(s) URL.
func (s *CustomButtonService) Create(ctx context.Context, draft *domain.CustomButtonDraft) (*domain.CustomButton, error) {
	if err := validateButton(draft); err != nil {
		s.log.Warnf(ctx, "custom button rejected err=%v", err)
		return nil, err
	}
	if _, err := s.integrations.GetByID(ctx, draft.IntegrationID); err != nil {
		return nil, err
	}

	button := &domain.CustomButton{
		ID:                  newID("K"),
		IntegrationID:       draft.IntegrationID,
		Name:                strings.TrimSpace(draft.Name),
		Webhook:             strings.TrimSpace(draft.Webhook),
		Data:                draft.Data,
		ForwardWholePayload: draft.ForwardWholePayload,
	}
	if err := s.repo.Create(ctx, button); err != nil {
		s.log.Errorf(ctx, "customButtons.Create failed integration=%s err=%v", draft.IntegrationID, err)
		return nil, err
	}
	s.log.Infof(ctx, "custom button created id=%s integration=%s", button.ID, button.IntegrationID)
	return button, nil
}

func (s *CustomButtonService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof(ctx, "custom button deleted id=%s", id)
	return nil
}

func validateButton(draft *domain.CustomButtonDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: custom button is required", domain.ErrValidation)
	}
	if strings.TrimSpace(draft.IntegrationID) == "" {
		return fmt.Errorf("%w: alert_receive_channel is required", domain.ErrValidation)
	}
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: custom button name is required", domain.ErrValidation)
	}
	u, err := url.Parse(strings.TrimSpace(draft.Webhook))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: webhook must be an absolute http(s) url", domain.ErrValidation)
	}
	return nil
}
