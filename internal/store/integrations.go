package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/internal/templates"
)

// IntegrationsCollection — имя коллекции интеграций в кэше и метриках.
const IntegrationsCollection = "integrations"

// IntegrationStore — интеграции (по ключу поиска и постранично), счётчики алертов,
// виды интеграций, шаблоны уведомлений, heartbeat-мониторы и пользовательские действия.
type IntegrationStore struct {
	gw    ports.IntegrationGateway
	cache ports.OrderedCache[*domain.Integration]
	log   ports.Logger

	mu         sync.RWMutex
	counters   map[string]domain.Counters
	options    []domain.IntegrationOption
	templates  map[string]domain.Templates
	heartbeats map[string]domain.Heartbeat       // id интеграции → heartbeat
	buttons    map[string][]*domain.CustomButton // id интеграции → действия
}

// NewIntegrationStore — DI-конструктор.
func NewIntegrationStore(
	gw ports.IntegrationGateway,
	cache ports.OrderedCache[*domain.Integration],
	log ports.Logger,
) *IntegrationStore {
	return &IntegrationStore{
		gw:        gw,
		cache:     cache,
		log:       log,
		counters:   make(map[string]domain.Counters),
		templates:  make(map[string]domain.Templates),
		heartbeats: make(map[string]domain.Heartbeat),
		buttons:    make(map[string][]*domain.CustomButton),
	}
}

// SearchKey — ключ последовательности результатов поиска.
func SearchKey(search string) string { return "search:" + search }

// PageKey — ключ последовательности страницы поиска.
func PageKey(search string, page int) string { return fmt.Sprintf("page:%d:%s", page, search) }

// List — интеграции по строке поиска; порядок сервера сохраняется под ключом поиска.
func (s *IntegrationStore) List(ctx context.Context, search string) ([]*domain.Integration, error) {
	items, err := s.gw.ListIntegrations(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list integrations search=%q: %w", search, err)
	}
	s.takeHeartbeats(items...)
	s.cache.Replace(SearchKey(search), items)

	out, _ := s.cache.Items(SearchKey(search))
	return out, nil
}

// Search — страница результатов поиска {count, results}.
func (s *IntegrationStore) Search(ctx context.Context, search string, page int) (*domain.IntegrationPage, error) {
	res, err := s.gw.SearchIntegrations(ctx, search, page)
	if err != nil {
		return nil, fmt.Errorf("search integrations search=%q page=%d: %w", search, page, err)
	}
	s.takeHeartbeats(res.Results...)
	s.cache.Replace(PageKey(search, res.Page), res.Results)
	return res, nil
}

// Cached — результаты последнего List по строке поиска.
func (s *IntegrationStore) Cached(search string) ([]*domain.Integration, bool) {
	return s.cache.Items(SearchKey(search))
}

// Get — интеграция из кэша.
func (s *IntegrationStore) Get(id string) (*domain.Integration, bool) {
	return s.cache.Get(id)
}

// Load — загрузка одной интеграции; при NotFound интеграция вытесняется из кэша.
func (s *IntegrationStore) Load(ctx context.Context, id string) (*domain.Integration, error) {
	item, err := s.gw.GetIntegration(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.cache.Evict(id)
		}
		return nil, fmt.Errorf("load integration id=%s: %w", id, err)
	}
	s.takeHeartbeats(item)
	s.cache.Upsert(item)
	return item, nil
}

// Create — создание интеграции (сервер создаёт и маршрут по умолчанию).
func (s *IntegrationStore) Create(ctx context.Context, draft *domain.IntegrationDraft) (*domain.Integration, error) {
	item, err := s.gw.CreateIntegration(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create integration: %w", err)
	}
	s.takeHeartbeats(item)
	s.cache.Upsert(item)
	s.log.Infof(ctx, "integration created id=%s kind=%s", item.ID, item.Kind)
	return item, nil
}

// Save — изменение интеграции; ответ сервера сохраняется под его id.
func (s *IntegrationStore) Save(ctx context.Context, id string, draft *domain.IntegrationDraft) (*domain.Integration, error) {
	item, err := s.gw.UpdateIntegration(ctx, id, draft)
	if err != nil {
		return nil, fmt.Errorf("save integration id=%s: %w", id, err)
	}
	s.takeHeartbeats(item)
	s.cache.Upsert(item)
	return item, nil
}

// Delete — удаление интеграции и всего, что о ней известно локально.
func (s *IntegrationStore) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteIntegration(ctx, id); err != nil {
		return fmt.Errorf("delete integration id=%s: %w", id, err)
	}
	s.Forget(id)
	s.log.Infof(ctx, "integration deleted id=%s", id)
	return nil
}

// Forget — убрать интеграцию из кэша и всех производных карт.
func (s *IntegrationStore) Forget(id string) {
	s.cache.Evict(id)

	s.mu.Lock()
	delete(s.counters, id)
	delete(s.templates, id)
	delete(s.heartbeats, id)
	delete(s.buttons, id)
	s.mu.Unlock()
}

// takeHeartbeats — heartbeat из ответа сервера переносится в отдельную карту,
// в кэш интеграция попадает без него. Интеграция без heartbeat стирает прежний.
func (s *IntegrationStore) takeHeartbeats(items ...*domain.Integration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.Heartbeat == nil {
			delete(s.heartbeats, it.ID)
			continue
		}
		s.heartbeats[it.ID] = *it.Heartbeat
		it.Heartbeat = nil
	}
}

// Heartbeat — heartbeat интеграции из последней загрузки.
func (s *IntegrationStore) Heartbeat(id string) (domain.Heartbeat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hb, ok := s.heartbeats[id]
	return hb, ok
}

// RefreshCounters — перечитать счётчики алертов всех интеграций.
func (s *IntegrationStore) RefreshCounters(ctx context.Context) error {
	counters, err := s.gw.Counters(ctx)
	if err != nil {
		return fmt.Errorf("refresh counters: %w", err)
	}
	s.mu.Lock()
	s.counters = counters
	s.mu.Unlock()
	return nil
}

// Counters — счётчики интеграции из последнего обновления.
func (s *IntegrationStore) Counters(id string) (domain.Counters, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.counters[id]
	return c, ok
}

// AllCounters — копия всех счётчиков.
func (s *IntegrationStore) AllCounters() map[string]domain.Counters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Counters, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}

// LoadOptions — виды интеграций, доступные для создания.
func (s *IntegrationStore) LoadOptions(ctx context.Context) ([]domain.IntegrationOption, error) {
	opts, err := s.gw.IntegrationOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load integration options: %w", err)
	}
	s.mu.Lock()
	s.options = opts
	s.mu.Unlock()
	return append([]domain.IntegrationOption(nil), opts...), nil
}

// Option — вид интеграции по её полю integration (kind).
func (s *IntegrationStore) Option(kind string) (domain.IntegrationOption, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.options {
		if o.Value == kind {
			return o, true
		}
	}
	return domain.IntegrationOption{}, false
}

// LoadTemplates — шаблоны уведомлений интеграции.
func (s *IntegrationStore) LoadTemplates(ctx context.Context, id string) (domain.Templates, error) {
	t, err := s.gw.GetTemplates(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load templates integration=%s: %w", id, err)
	}
	s.mu.Lock()
	s.templates[id] = t.Clone()
	s.mu.Unlock()
	return t, nil
}

// SaveTemplates — сохранить шаблоны; в кэш попадает ответ сервера.
func (s *IntegrationStore) SaveTemplates(ctx context.Context, id string, t domain.Templates) (domain.Templates, error) {
	saved, err := s.gw.SaveTemplates(ctx, id, t)
	if err != nil {
		return nil, fmt.Errorf("save templates integration=%s: %w", id, err)
	}
	s.mu.Lock()
	s.templates[id] = saved.Clone()
	s.mu.Unlock()
	return saved, nil
}

// Templates — шаблоны интеграции из кэша.
func (s *IntegrationStore) Templates(id string) (domain.Templates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[id]
	return t.Clone(), ok
}

// PreviewTemplate — отрисовка шаблона сервером. Неизвестное имя шаблона
// отклоняется до сетевого вызова.
func (s *IntegrationStore) PreviewTemplate(ctx context.Context, id string, req *domain.TemplatePreviewRequest) (*domain.TemplatePreview, error) {
	if req == nil || !templates.IsKnown(req.TemplateName) {
		return nil, fmt.Errorf("%w: unknown template for preview", domain.ErrValidation)
	}
	out, err := s.gw.PreviewTemplate(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("preview template integration=%s name=%s: %w", id, req.TemplateName, err)
	}
	return out, nil
}

// LoadCustomButtons — пользовательские действия интеграции; список заменяет прежний.
func (s *IntegrationStore) LoadCustomButtons(ctx context.Context, integrationID string) ([]*domain.CustomButton, error) {
	buttons, err := s.gw.ListCustomButtons(ctx, integrationID)
	if err != nil {
		return nil, fmt.Errorf("load custom buttons integration=%s: %w", integrationID, err)
	}
	s.mu.Lock()
	s.buttons[integrationID] = cloneButtons(buttons)
	s.mu.Unlock()
	return buttons, nil
}

// CustomButtons — действия интеграции из кэша.
func (s *IntegrationStore) CustomButtons(integrationID string) ([]*domain.CustomButton, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buttons[integrationID]
	return cloneButtons(b), ok
}

// DeleteCustomButton — удаление действия; из кэша оно уходит только после ответа сервера.
func (s *IntegrationStore) DeleteCustomButton(ctx context.Context, id string) error {
	if err := s.gw.DeleteCustomButton(ctx, id); err != nil {
		return fmt.Errorf("delete custom button id=%s: %w", id, err)
	}
	s.mu.Lock()
	for integrationID, list := range s.buttons {
		s.buttons[integrationID] = slices.DeleteFunc(list, func(b *domain.CustomButton) bool { return b.ID == id })
	}
	s.mu.Unlock()
	s.log.Infof(ctx, "custom button deleted id=%s", id)
	return nil
}

func cloneButtons(in []*domain.CustomButton) []*domain.CustomButton {
	if in == nil {
		return nil
	}
	out := make([]*domain.CustomButton, 0, len(in))
	for _, b := range in {
		out = append(out, b.Clone())
	}
	return out
}

// ChangeTeam — перенос интеграции в другую команду с перечитыванием интеграции.
func (s *IntegrationStore) ChangeTeam(ctx context.Context, id, teamID string) (*domain.Integration, error) {
	if err := s.gw.ChangeTeam(ctx, id, teamID); err != nil {
		return nil, fmt.Errorf("change team integration=%s: %w", id, err)
	}
	return s.Load(ctx, id)
}

// SendDemoAlert — демо-алерт в интеграцию; счётчики обновляются в фоне.
func (s *IntegrationStore) SendDemoAlert(ctx context.Context, id string, payload map[string]any) error {
	if err := s.gw.SendDemoAlert(ctx, id, payload); err != nil {
		return fmt.Errorf("send demo alert integration=%s: %w", id, err)
	}
	go s.RefreshCountersBestEffort(context.WithoutCancel(ctx))
	return nil
}

// RefreshCountersBestEffort — RefreshCounters с логированием вместо ошибки.
func (s *IntegrationStore) RefreshCountersBestEffort(ctx context.Context) {
	if err := s.RefreshCounters(ctx); err != nil {
		s.log.Warnf(ctx, "counters refresh failed err=%v", err)
	}
}
