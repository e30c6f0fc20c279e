package store

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

// EscalationsCollection — имя коллекции цепочек эскалации.
const EscalationsCollection = "escalation_chains"

const allChains = ""

// EscalationStore — цепочки эскалации для выбора в маршруте.
type EscalationStore struct {
	gw    ports.EscalationGateway
	cache ports.OrderedCache[*domain.EscalationChain]
	log   ports.Logger
}

func NewEscalationStore(
	gw ports.EscalationGateway,
	cache ports.OrderedCache[*domain.EscalationChain],
	log ports.Logger,
) *EscalationStore {
	return &EscalationStore{gw: gw, cache: cache, log: log}
}

// List — цепочки: из кэша, если свежие, иначе с сервера.
func (s *EscalationStore) List(ctx context.Context) ([]*domain.EscalationChain, error) {
	if s.cache.Fresh(allChains) {
		if items, ok := s.cache.Items(allChains); ok {
			return items, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh — перечитать цепочки с сервера.
func (s *EscalationStore) Refresh(ctx context.Context) ([]*domain.EscalationChain, error) {
	chains, err := s.gw.ListEscalationChains(ctx)
	if err != nil {
		return nil, fmt.Errorf("list escalation chains: %w", err)
	}
	s.cache.Replace(allChains, chains)
	items, _ := s.cache.Items(allChains)
	return items, nil
}

func (s *EscalationStore) Get(id string) (*domain.EscalationChain, bool) {
	return s.cache.Get(id)
}

// Create — новая цепочка; список перечитывается, чтобы она попала в порядок сервера.
func (s *EscalationStore) Create(ctx context.Context, name string, teamID *string) (*domain.EscalationChain, error) {
	chain, err := s.gw.CreateEscalationChain(ctx, name, teamID)
	if err != nil {
		return nil, fmt.Errorf("create escalation chain: %w", err)
	}
	s.cache.Upsert(chain)
	if _, err := s.Refresh(ctx); err != nil {
		s.log.Warnf(ctx, "escalation chains refresh failed after create id=%s err=%v", chain.ID, err)
	}
	return chain, nil
}
