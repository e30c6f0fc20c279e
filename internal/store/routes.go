// Package store — клиентские хранилища поверх удалённого API: маршруты, интеграции,
// цепочки эскалации. Данные живут в упорядоченном кэше, сервер остаётся источником истины.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

// RoutesCollection — имя коллекции маршрутов в кэше и метриках.
const RoutesCollection = "routes"

// RouteStore — маршруты интеграций: чтение через кэш, оптимистичные перестановка
// и удаление с обязательной последующей сверкой с сервером.
type RouteStore struct {
	gw    ports.RouteGateway
	cache ports.OrderedCache[*domain.Route]
	log   ports.Logger

	reconcileTimeout time.Duration // 0 — только таймаут шлюза

	hookMu sync.RWMutex
	hooks  []func(ctx context.Context, integrationID string)
}

// NewRouteStore — DI-конструктор.
func NewRouteStore(
	gw ports.RouteGateway,
	cache ports.OrderedCache[*domain.Route],
	log ports.Logger,
	reconcileTimeout time.Duration,
) *RouteStore {
	return &RouteStore{
		gw:               gw,
		cache:            cache,
		log:              log,
		reconcileTimeout: reconcileTimeout,
	}
}

// OnStructuralChange — зависимое обновление после вставки, перестановки или удаления.
// Хуки запускаются в фоне и не блокируют вызывающего.
func (s *RouteStore) OnStructuralChange(fn func(ctx context.Context, integrationID string)) {
	s.hookMu.Lock()
	s.hooks = append(s.hooks, fn)
	s.hookMu.Unlock()
}

// Subscribe — подписка на изменения кэша маршрутов.
func (s *RouteStore) Subscribe(fn func(domain.CacheChange)) (unsubscribe func()) {
	return s.cache.OnChange(fn)
}

// FetchAll — загружает маршруты интеграции и полностью заменяет ими кэш родителя.
// При ошибке состояние кэша не меняется.
func (s *RouteStore) FetchAll(ctx context.Context, integrationID string) ([]*domain.Route, error) {
	routes, err := s.gw.ListRoutes(ctx, integrationID)
	if err != nil {
		s.log.Warnf(ctx, "fetch routes failed integration=%s err=%v", integrationID, err)
		return nil, fmt.Errorf("fetch routes integration=%s: %w", integrationID, err)
	}
	s.cache.Replace(integrationID, routes)

	items, _ := s.cache.Items(integrationID)
	return items, nil
}

// Routes — маршруты из кэша, если они свежие; иначе FetchAll.
func (s *RouteStore) Routes(ctx context.Context, integrationID string) ([]*domain.Route, error) {
	if s.cache.Fresh(integrationID) {
		if items, ok := s.cache.Items(integrationID); ok {
			return items, nil
		}
	}
	return s.FetchAll(ctx, integrationID)
}

// Cached — маршруты интеграции без обращения к серверу.
func (s *RouteStore) Cached(integrationID string) ([]*domain.Route, bool) {
	return s.cache.Items(integrationID)
}

// Loaded — загружена ли последовательность маршрутов интеграции.
func (s *RouteStore) Loaded(integrationID string) bool {
	return s.cache.Has(integrationID)
}

// Sequence — текущий локальный порядок id маршрутов.
func (s *RouteStore) Sequence(integrationID string) ([]string, bool) {
	return s.cache.Sequence(integrationID)
}

// State — состояние синхронизации интеграции.
func (s *RouteStore) State(integrationID string) (domain.SyncState, bool) {
	return s.cache.State(integrationID)
}

// Get — маршрут из кэша.
func (s *RouteStore) Get(routeID string) (*domain.Route, bool) {
	return s.cache.Get(routeID)
}

// FetchOne — загружает один маршрут и кладёт его в карту кэша.
func (s *RouteStore) FetchOne(ctx context.Context, routeID string) (*domain.Route, error) {
	route, err := s.gw.GetRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("fetch route id=%s: %w", routeID, err)
	}
	s.cache.Upsert(route)
	return route, nil
}

// Insert — создаёт маршрут на сервере. Локальный порядок не меняется:
// новое место маршрута знает только сервер, вызывающий делает FetchAll.
func (s *RouteStore) Insert(ctx context.Context, draft *domain.RouteDraft) (*domain.Route, error) {
	created, err := s.gw.CreateRoute(ctx, draft)
	if err != nil {
		s.log.Warnf(ctx, "create route failed integration=%s err=%v", draft.IntegrationID, err)
		return nil, fmt.Errorf("create route: %w", err)
	}
	s.log.Infof(ctx, "route created id=%s integration=%s", created.ID, created.IntegrationID)
	s.structuralChange(ctx, created.IntegrationID)
	return created, nil
}

// Update — частичное обновление; ответ сервера сохраняется под id из ответа.
func (s *RouteStore) Update(ctx context.Context, routeID string, patch *domain.RoutePatch) (*domain.Route, error) {
	updated, err := s.gw.UpdateRoute(ctx, routeID, patch)
	if err != nil {
		s.log.Warnf(ctx, "update route failed id=%s err=%v", routeID, err)
		return nil, fmt.Errorf("update route id=%s: %w", routeID, err)
	}
	s.cache.Upsert(updated)
	return updated, nil
}

// SetEscalationChain — привязать маршрут к цепочке; пустой chainID снимает привязку.
func (s *RouteStore) SetEscalationChain(ctx context.Context, routeID, chainID string) (*domain.Route, error) {
	patch := &domain.RoutePatch{}
	if chainID == "" {
		patch.ClearEscalationChain = true
	} else {
		patch.EscalationChainID = &chainID
	}
	return s.Update(ctx, routeID, patch)
}

// MoveToPosition — оптимистичная перестановка маршрута интеграции.
//  1. локальный порядок меняется сразу, подписчики узнают об этом до сетевого вызова;
//  2. серверу уходит запрос на перенос с индексом назначения;
//  3. независимо от исхода выполняется сверка (FetchAll), которая может тихо откатить перестановку;
//  4. зависимые обновления запускаются только после принятого сервером переноса.
//
// Возвращается ошибка запроса переноса; ошибка сверки только логируется.
func (s *RouteStore) MoveToPosition(ctx context.Context, integrationID string, from, to int) error {
	if err := s.ensureLoaded(ctx, integrationID); err != nil {
		return err
	}

	routeID, err := s.cache.Move(integrationID, from, to)
	if err != nil {
		return fmt.Errorf("move route integration=%s: %w", integrationID, err)
	}
	optimistic, _ := s.cache.Sequence(integrationID)
	s.log.Infof(ctx, "route moved locally id=%s integration=%s from=%d to=%d", routeID, integrationID, from, to)

	reqErr := s.gw.MoveRoute(ctx, routeID, to)
	if reqErr != nil {
		s.log.Warnf(ctx, "move route request failed id=%s to=%d err=%v", routeID, to, reqErr)
		reqErr = fmt.Errorf("move route id=%s: %w", routeID, reqErr)
	}

	s.reconcile(ctx, integrationID, optimistic)
	if reqErr == nil {
		s.structuralChange(ctx, integrationID)
	}
	return reqErr
}

// Delete — оптимистичное удаление маршрута из порядка интеграции, запрос на сервер
// и обязательная сверка. Зависимые обновления — только после успешного удаления.
// Возвращается ошибка запроса удаления.
func (s *RouteStore) Delete(ctx context.Context, routeID, integrationID string) error {
	if err := s.ensureLoaded(ctx, integrationID); err != nil {
		return err
	}

	if !s.cache.Remove(integrationID, routeID) {
		s.log.Warnf(ctx, "route not in local order id=%s integration=%s", routeID, integrationID)
	}
	optimistic, _ := s.cache.Sequence(integrationID)

	reqErr := s.gw.DeleteRoute(ctx, routeID)
	if reqErr != nil {
		s.log.Warnf(ctx, "delete route request failed id=%s err=%v", routeID, reqErr)
		reqErr = fmt.Errorf("delete route id=%s: %w", routeID, reqErr)
	} else {
		s.log.Infof(ctx, "route deleted id=%s integration=%s", routeID, integrationID)
	}

	s.reconcile(ctx, integrationID, optimistic)
	if reqErr == nil {
		s.structuralChange(ctx, integrationID)
	}
	return reqErr
}

// DeleteRoute — Delete с интеграцией, взятой из кэша (или с сервера, если маршрута нет в кэше).
func (s *RouteStore) DeleteRoute(ctx context.Context, routeID string) error {
	integrationID, err := s.integrationOf(ctx, routeID)
	if err != nil {
		return err
	}
	return s.Delete(ctx, routeID, integrationID)
}

// SendDemoAlert — демо-алерт через конкретный маршрут; меняет счётчики интеграции.
func (s *RouteStore) SendDemoAlert(ctx context.Context, routeID string) error {
	if err := s.gw.SendRouteDemoAlert(ctx, routeID); err != nil {
		return fmt.Errorf("send demo alert route=%s: %w", routeID, err)
	}
	if integrationID, err := s.integrationOf(ctx, routeID); err == nil {
		s.structuralChange(ctx, integrationID)
	}
	return nil
}

// ConvertToJinja2 — сервер переписывает regex-условие в jinja2; результат кладётся в кэш.
func (s *RouteStore) ConvertToJinja2(ctx context.Context, routeID string) (*domain.Route, error) {
	route, err := s.gw.ConvertRouteToJinja2(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("convert route id=%s: %w", routeID, err)
	}
	s.cache.Upsert(route)
	return route, nil
}

// Forget — интеграция удалена: её последовательность становится пустой.
func (s *RouteStore) Forget(integrationID string) {
	if s.cache.Has(integrationID) {
		s.cache.Replace(integrationID, nil)
	}
}

func (s *RouteStore) ensureLoaded(ctx context.Context, integrationID string) error {
	if s.cache.Has(integrationID) {
		return nil
	}
	_, err := s.FetchAll(ctx, integrationID)
	return err
}

func (s *RouteStore) integrationOf(ctx context.Context, routeID string) (string, error) {
	if route, ok := s.cache.Get(routeID); ok && route.IntegrationID != "" {
		return route.IntegrationID, nil
	}
	route, err := s.FetchOne(ctx, routeID)
	if err != nil {
		return "", err
	}
	return route.IntegrationID, nil
}
