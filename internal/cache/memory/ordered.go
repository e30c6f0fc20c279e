package memory

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
)

// Проверка, что Ordered удовлетворяет порту кэша.
var _ ports.OrderedCache[*domain.Route] = (*Ordered[*domain.Route])(nil)

// Entity — сущность, которую можно хранить в упорядоченном кэше.
type Entity[T any] interface {
	EntityID() string
	Clone() T
}

// group — упорядоченная последовательность id одного родителя.
// members — все id, загруженные этим родителем (включая оптимистично скрытые).
type group struct {
	parent   string
	ids      []string
	members  map[string]struct{}
	loadedAt time.Time
	state    domain.SyncState
}

// Ordered — упорядоченный кэш: для каждого родителя последовательность id
// и общая карта id → сущность. Родители вытесняются по LRU, свежесть — по TTL.
type Ordered[T Entity[T]] struct {
	collection string
	capacity   int
	ttl        time.Duration
	now        func() time.Time

	mu     sync.Mutex
	items  map[string]T
	owner  map[string]string
	ll     *list.List
	groups map[string]*list.Element

	subMu   sync.Mutex
	subs    map[int]func(domain.CacheChange)
	nextSub int
}

// NewOrdered — конструктор. capacity ограничивает число родителей (<=0 — без ограничения),
// ttl задаёт свежесть последовательности (<=0 — всегда свежая).
func NewOrdered[T Entity[T]](collection string, capacity int, ttl time.Duration) *Ordered[T] {
	return &Ordered[T]{
		collection: collection,
		capacity:   capacity,
		ttl:        ttl,
		now:        time.Now,
		items:      make(map[string]T),
		owner:      make(map[string]string),
		ll:         list.New(),
		groups:     make(map[string]*list.Element),
		subs:       make(map[int]func(domain.CacheChange)),
	}
}

// Replace — полная перезапись последовательности родителя и его сущностей (не слияние).
func (c *Ordered[T]) Replace(parent string, items []T) {
	now := c.now()

	c.mu.Lock()
	c.pruneExpiredFromBack(now)

	g := c.groupLocked(parent)
	if g == nil {
		g = &group{parent: parent}
		c.groups[parent] = c.ll.PushFront(g)
	} else {
		c.ll.MoveToFront(c.groups[parent])
		c.dropMembersLocked(g)
	}

	g.ids = make([]string, 0, len(items))
	g.members = make(map[string]struct{}, len(items))
	for _, it := range items {
		id := it.EntityID()
		if _, dup := g.members[id]; dup {
			continue
		}
		c.items[id] = it.Clone()
		c.owner[id] = parent
		g.ids = append(g.ids, id)
		g.members[id] = struct{}{}
	}
	g.loadedAt = now
	c.transitionLocked(g, domain.StateSynchronized)

	c.evictOverCapacity(parent)
	change := c.changeLocked(g, domain.OpReplace, g.ids)
	c.observeSizeLocked()
	c.mu.Unlock()

	metrics.CacheOps.WithLabelValues(c.collection, "replace").Inc()
	c.notify(change)
}

// Upsert — кладёт сущность в карту по её id; последовательности не меняются.
func (c *Ordered[T]) Upsert(item T) {
	id := item.EntityID()

	c.mu.Lock()
	c.items[id] = item.Clone()
	change := domain.CacheChange{Collection: c.collection, Parent: c.owner[id], Op: domain.OpUpsert, IDs: []string{id}}
	if g := c.groupLocked(change.Parent); g != nil {
		change.Sequence = append([]string(nil), g.ids...)
		change.State = g.state
	}
	c.observeSizeLocked()
	c.mu.Unlock()

	metrics.CacheOps.WithLabelValues(c.collection, "upsert").Inc()
	c.notify(change)
}

// Get — копия сущности по id.
func (c *Ordered[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.collection, "miss").Inc()
		var zero T
		return zero, false
	}
	metrics.CacheOps.WithLabelValues(c.collection, "hit").Inc()
	return it.Clone(), true
}

// Items — сущности родителя в порядке последовательности.
func (c *Ordered[T]) Items(parent string) ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.touchLocked(parent)
	if g == nil {
		metrics.CacheOps.WithLabelValues(c.collection, "miss").Inc()
		return nil, false
	}
	out := make([]T, 0, len(g.ids))
	for _, id := range g.ids {
		if it, ok := c.items[id]; ok {
			out = append(out, it.Clone())
		}
	}
	metrics.CacheOps.WithLabelValues(c.collection, "hit").Inc()
	return out, true
}

// Sequence — копия последовательности id родителя.
func (c *Ordered[T]) Sequence(parent string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.touchLocked(parent)
	if g == nil {
		return nil, false
	}
	return append([]string(nil), g.ids...), true
}

// Move — оптимистичная перестановка: удалить с позиции from, вставить на позицию to.
// Возвращает id перемещённой сущности; родитель переходит в optimistically_mutated.
func (c *Ordered[T]) Move(parent string, from, to int) (string, error) {
	c.mu.Lock()
	g := c.touchLocked(parent)
	if g == nil {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: parent %q is not loaded", domain.ErrNotFound, parent)
	}
	moved, err := domain.MoveID(g.ids, from, to)
	if err != nil {
		c.mu.Unlock()
		return "", err
	}
	id := g.ids[from]
	g.ids = moved
	c.transitionLocked(g, domain.StateOptimisticallyMutated)
	change := c.changeLocked(g, domain.OpMove, []string{id})
	c.mu.Unlock()

	metrics.CacheOps.WithLabelValues(c.collection, "move").Inc()
	c.notify(change)
	return id, nil
}

// Remove — оптимистично убирает id из последовательности родителя.
// Сущность остаётся в карте до следующего Replace.
func (c *Ordered[T]) Remove(parent, id string) bool {
	c.mu.Lock()
	g := c.touchLocked(parent)
	if g == nil {
		c.mu.Unlock()
		return false
	}
	idx := indexOf(g.ids, id)
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	g.ids = append(g.ids[:idx:idx], g.ids[idx+1:]...)
	c.transitionLocked(g, domain.StateOptimisticallyMutated)
	change := c.changeLocked(g, domain.OpRemove, []string{id})
	c.mu.Unlock()

	metrics.CacheOps.WithLabelValues(c.collection, "remove").Inc()
	c.notify(change)
	return true
}

// Evict — удаляет сущность из карты и из всех последовательностей.
func (c *Ordered[T]) Evict(id string) {
	c.mu.Lock()
	if _, ok := c.items[id]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.items, id)
	delete(c.owner, id)
	for e := c.ll.Front(); e != nil; e = e.Next() {
		g := e.Value.(*group)
		delete(g.members, id)
		if idx := indexOf(g.ids, id); idx >= 0 {
			g.ids = append(g.ids[:idx:idx], g.ids[idx+1:]...)
		}
	}
	c.observeSizeLocked()
	c.mu.Unlock()

	metrics.CacheOps.WithLabelValues(c.collection, "evict").Inc()
	c.notify(domain.CacheChange{Collection: c.collection, Op: domain.OpEvict, IDs: []string{id}})
}

// SetState — меняет состояние синхронизации родителя (если он загружен).
func (c *Ordered[T]) SetState(parent string, st domain.SyncState) {
	c.mu.Lock()
	g := c.groupLocked(parent)
	if g == nil || g.state == st {
		c.mu.Unlock()
		return
	}
	c.transitionLocked(g, st)
	change := c.changeLocked(g, domain.OpState, nil)
	c.mu.Unlock()

	c.notify(change)
}

// State — состояние синхронизации родителя.
func (c *Ordered[T]) State(parent string) (domain.SyncState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.groupLocked(parent)
	if g == nil {
		return "", false
	}
	return g.state, true
}

// Has — загружена ли последовательность родителя.
func (c *Ordered[T]) Has(parent string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groupLocked(parent) != nil
}

// Fresh — последовательность загружена и не старше TTL.
func (c *Ordered[T]) Fresh(parent string) bool {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.groupLocked(parent)
	if g == nil {
		return false
	}
	return !c.isExpired(g, now)
}

// ParentOf — родитель, чья загрузка положила сущность в кэш.
func (c *Ordered[T]) ParentOf(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.owner[id]
	return p, ok
}

// OnChange — подписка на изменения; возвращает функцию отписки.
// Колбэки вызываются синхронно после изменения, вне блокировки кэша.
func (c *Ordered[T]) OnChange(fn func(domain.CacheChange)) func() {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
		})
	}
}
