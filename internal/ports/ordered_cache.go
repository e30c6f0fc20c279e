package ports

import "github.com/Gunvolt24/oncall_routes/internal/domain"

// OrderedCache — локальная копия упорядоченных коллекций: родитель → последовательность id,
// плюс общая карта id → сущность.
// Требования к реализации: потокобезопасность; возврат копий; уведомления вне блокировки.
type OrderedCache[T any] interface {
	Replace(parent string, items []T)
	Upsert(item T)
	Get(id string) (T, bool)
	Items(parent string) ([]T, bool)
	Sequence(parent string) ([]string, bool)
	Move(parent string, from, to int) (string, error)
	Remove(parent, id string) bool
	Evict(id string)
	SetState(parent string, st domain.SyncState)
	State(parent string) (domain.SyncState, bool)
	Has(parent string) bool
	Fresh(parent string) bool
	ParentOf(id string) (string, bool)
	OnChange(fn func(domain.CacheChange)) func()
}
