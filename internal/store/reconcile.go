package store

import (
	"context"
	"slices"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
)

const (
	outcomeConverged = "converged"
	outcomeReverted  = "reverted"
	outcomeFailed    = "failed"
)

// reconcile — сверка после оптимистичного изменения: FetchAll родителя.
// Отмена контекста вызывающего сверку не прерывает. При ошибке родитель
// возвращается в synchronized с последним записанным порядком.
func (s *RouteStore) reconcile(ctx context.Context, integrationID string, optimistic []string) {
	rctx := context.WithoutCancel(ctx)
	if s.reconcileTimeout > 0 {
		var cancel context.CancelFunc
		rctx, cancel = context.WithTimeout(rctx, s.reconcileTimeout)
		defer cancel()
	}

	s.cache.SetState(integrationID, domain.StateReconciling)

	if _, err := s.FetchAll(rctx, integrationID); err != nil {
		s.cache.SetState(integrationID, domain.StateSynchronized)
		metrics.ReconcileTotal.WithLabelValues(RoutesCollection, outcomeFailed).Inc()
		s.log.Errorf(ctx, "reconcile failed integration=%s err=%v", integrationID, err)
		return
	}

	server, _ := s.cache.Sequence(integrationID)
	outcome := outcomeConverged
	if !slices.Equal(server, optimistic) {
		outcome = outcomeReverted
		s.log.Warnf(ctx, "reconcile reverted local order integration=%s local=%v server=%v", integrationID, optimistic, server)
	}
	metrics.ReconcileTotal.WithLabelValues(RoutesCollection, outcome).Inc()
}

// structuralChange — фоновые зависимые обновления (счётчики интеграции).
func (s *RouteStore) structuralChange(ctx context.Context, integrationID string) {
	s.hookMu.RLock()
	hooks := slices.Clone(s.hooks)
	s.hookMu.RUnlock()

	bg := context.WithoutCancel(ctx)
	for _, fn := range hooks {
		go fn(bg, integrationID)
	}
}
