package memory

import (
	"sort"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
)

// groupLocked — группа родителя без изменения LRU-порядка.
func (c *Ordered[T]) groupLocked(parent string) *group {
	elem, ok := c.groups[parent]
	if !ok {
		return nil
	}
	return elem.Value.(*group)
}

// touchLocked — группа родителя с продвижением в начало LRU.
func (c *Ordered[T]) touchLocked(parent string) *group {
	elem, ok := c.groups[parent]
	if !ok {
		return nil
	}
	c.ll.MoveToFront(elem)
	return elem.Value.(*group)
}

// dropMembersLocked — удаляет из карты сущности, которые принадлежат группе.
func (c *Ordered[T]) dropMembersLocked(g *group) {
	for id := range g.members {
		if c.owner[id] == g.parent {
			delete(c.items, id)
			delete(c.owner, id)
		}
	}
}

// removeGroupLocked — удаляет группу из списка, индекса и её сущности из карты.
func (c *Ordered[T]) removeGroupLocked(parent string) {
	elem, ok := c.groups[parent]
	if !ok {
		return
	}
	c.dropMembersLocked(elem.Value.(*group))
	delete(c.groups, parent)
	c.ll.Remove(elem)
}

// evictOverCapacity — вытесняет наименее используемых родителей, кроме keep.
// Кандидаты — только синхронизированные группы: несогласованную оптимистичную
// последовательность терять нельзя, поэтому ёмкость может быть временно превышена.
func (c *Ordered[T]) evictOverCapacity(keep string) {
	if c.capacity <= 0 {
		return
	}
	for elem := c.ll.Back(); elem != nil && c.ll.Len() > c.capacity; {
		g := elem.Value.(*group)
		prev := elem.Prev()
		if g.parent != keep && g.state == domain.StateSynchronized {
			c.removeGroupLocked(g.parent)
			metrics.CacheOps.WithLabelValues(c.collection, "evicted").Inc()
		}
		elem = prev
	}
}

// isExpired — проверяет истечение TTL группы.
func (c *Ordered[T]) isExpired(g *group, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(g.loadedAt.Add(c.ttl))
}

// pruneExpiredFromBack — удаляет синхронизированные группы с истекшим TTL из хвоста
// до первой актуальной. Группы в процессе оптимистичного изменения не трогаем.
func (c *Ordered[T]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		g := back.Value.(*group)
		if g.state != domain.StateSynchronized || !c.isExpired(g, now) {
			return
		}
		c.removeGroupLocked(g.parent)
		metrics.CacheOps.WithLabelValues(c.collection, "expired").Inc()
	}
}

// transitionLocked — смена состояния группы с учётом в метриках.
func (c *Ordered[T]) transitionLocked(g *group, st domain.SyncState) {
	if g.state == st {
		return
	}
	g.state = st
	metrics.SyncStateTransitions.WithLabelValues(c.collection, string(st)).Inc()
}

// changeLocked — уведомление с копией текущей последовательности группы.
func (c *Ordered[T]) changeLocked(g *group, op domain.ChangeOp, ids []string) domain.CacheChange {
	return domain.CacheChange{
		Collection: c.collection,
		Parent:     g.parent,
		Op:         op,
		IDs:        append([]string(nil), ids...),
		Sequence:   append([]string(nil), g.ids...),
		State:      g.state,
	}
}

// observeSizeLocked — обновляет gauge-метрики размера.
func (c *Ordered[T]) observeSizeLocked() {
	metrics.CacheSize.WithLabelValues(c.collection).Set(float64(len(c.items)))
	metrics.CacheParents.WithLabelValues(c.collection).Set(float64(c.ll.Len()))
}

// notify — рассылает изменение подписчикам в порядке подписки.
func (c *Ordered[T]) notify(change domain.CacheChange) {
	c.subMu.Lock()
	keys := make([]int, 0, len(c.subs))
	for k := range c.subs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fns := make([]func(domain.CacheChange), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, c.subs[k])
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
