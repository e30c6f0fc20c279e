package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

var _ ports.EscalationService = (*EscalationService)(nil)

// EscalationService — цепочки эскалации для выбора в маршрутах.
type EscalationService struct {
	repo ports.EscalationRepository
	log  ports.Logger
}

func NewEscalationService(repo ports.EscalationRepository, log ports.Logger) *EscalationService {
	return &EscalationService{repo: repo, log: log}
}

func (s *EscalationService) List(ctx context.Context) ([]*domain.EscalationChain, error) {
	return s.repo.List(ctx)
}

// Create — новая цепочка; имя обязательно.
func (s *EscalationService) Create(ctx context.Context, name string, teamID *string) (*domain.EscalationChain, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: escalation chain name is required", domain.ErrValidation)
	}
	chain := &domain.EscalationChain{ID: newID("F"), Name: name, TeamID: normalizeTeam(teamID)}
	if err := s.repo.Create(ctx, chain); err != nil {
		s.log.Errorf(ctx, "escalations.Create failed name=%q err=%v", name, err)
		return nil, err
	}
	s.log.Infof(ctx, "escalation chain created id=%s", chain.ID)
	return chain, nil
}
