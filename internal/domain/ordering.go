package domain

import "fmt"

// SyncState — состояние последовательности родителя относительно сервера.
type SyncState string

const (
	StateSynchronized          SyncState = "synchronized"
	StateOptimisticallyMutated SyncState = "optimistically_mutated"
	StateReconciling           SyncState = "reconciling"
)

// ChangeOp — вид изменения локального кэша.
type ChangeOp string

const (
	OpReplace ChangeOp = "replace"
	OpUpsert  ChangeOp = "upsert"
	OpMove    ChangeOp = "move"
	OpRemove  ChangeOp = "remove"
	OpEvict   ChangeOp = "evict"
	OpState   ChangeOp = "state"
)

// CacheChange — уведомление подписчикам кэша. Sequence — порядок родителя после изменения.
type CacheChange struct {
	Collection string    `json:"collection"`
	Parent     string    `json:"parent,omitempty"`
	Op         ChangeOp  `json:"op"`
	IDs        []string  `json:"ids,omitempty"`
	Sequence   []string  `json:"sequence,omitempty"`
	State      SyncState `json:"state,omitempty"`
}

// MoveID — перестановка: элемент с позиции from удаляется и вставляется на позицию to.
// Исходный срез не меняется; результат — перестановка исходного.
func MoveID(ids []string, from, to int) ([]string, error) {
	n := len(ids)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("%w: from index %d out of range [0,%d)", ErrValidation, from, n)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("%w: to index %d out of range [0,%d)", ErrValidation, to, n)
	}

	out := make([]string, 0, n)
	moved := ids[from]
	for i, id := range ids {
		if i != from {
			out = append(out, id)
		}
	}
	out = append(out, "")
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, nil
}
