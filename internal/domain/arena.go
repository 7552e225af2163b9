package domain

import (
	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/core/types/enums"
)

// Arena — хранилище сущностей уровня со слотами и поколениями.
// Ссылки на элементы — только Handle: устаревшая ссылка (слот освобожден
// или переиспользован) просто не разрешается.
//
// Емкость Slots выделяется сразу на Max: вставка никогда не переносит
// массив, и указатель из Get живет, пока жив сам элемент.
type Arena[T any] struct {
	Kind  enums.Kind `json:"kind"`
	Depth uint8      `json:"depth"`
	Max   int        `json:"max"`

	Slots []ArenaSlot[T] `json:"slots"`
	free  []uint32
}

type ArenaSlot[T any] struct {
	Gen   uint16 `json:"gen"`
	Live  bool   `json:"live"`
	Value T      `json:"value"`
}

// NewArena создает арену. Слот 0 зарезервирован: NilHandle никогда не разрешается.
func NewArena[T any](kind enums.Kind, depth uint8, limit int) *Arena[T] {
	return &Arena[T]{
		Kind:  kind,
		Depth: depth,
		Max:   limit,
		Slots: make([]ArenaSlot[T], 1, max(limit, 1)),
	}
}

// Insert кладет значение в свободный слот. При переполнении — NilHandle.
func (a *Arena[T]) Insert(v T) types.Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if len(a.Slots) >= a.Max {
			return types.NilHandle
		}
		a.Slots = append(a.Slots, ArenaSlot[T]{})
		idx = uint32(len(a.Slots) - 1)
	}
	s := &a.Slots[idx]
	s.Gen++
	if s.Gen == 0 {
		s.Gen = 1
	}
	s.Live = true
	s.Value = v
	return types.PackHandle(a.Depth, a.Kind, s.Gen, idx)
}

// Get разрешает ссылку. nil — ссылка пустая, чужая или устаревшая.
func (a *Arena[T]) Get(h types.Handle) *T {
	if h.IsNil() || h.Kind() != a.Kind || !h.IsLocal(a.Depth) {
		return nil
	}
	idx := h.Index()
	if int(idx) >= len(a.Slots) {
		return nil
	}
	s := &a.Slots[idx]
	if !s.Live || s.Gen != h.Generation() {
		return nil
	}
	return &s.Value
}

// Remove освобождает слот. Повторное удаление — no-op.
func (a *Arena[T]) Remove(h types.Handle) bool {
	if a.Get(h) == nil {
		return false
	}
	idx := h.Index()
	var zero T
	a.Slots[idx].Live = false
	a.Slots[idx].Value = zero
	a.free = append(a.free, idx)
	return true
}

// Len — число живых элементов.
func (a *Arena[T]) Len() int {
	n := 0
	for i := range a.Slots {
		if a.Slots[i].Live {
			n++
		}
	}
	return n
}

// HandleAt строит ссылку на живой слот idx (для обхода по индексам).
func (a *Arena[T]) HandleAt(idx int) types.Handle {
	if idx <= 0 || idx >= len(a.Slots) || !a.Slots[idx].Live {
		return types.NilHandle
	}
	return types.PackHandle(a.Depth, a.Kind, a.Slots[idx].Gen, uint32(idx))
}

// Handles возвращает ссылки на все живые элементы по возрастанию индекса.
func (a *Arena[T]) Handles() []types.Handle {
	out := make([]types.Handle, 0, len(a.Slots))
	for i := 1; i < len(a.Slots); i++ {
		if h := a.HandleAt(i); !h.IsNil() {
			out = append(out, h)
		}
	}
	return out
}

// Rebuild восстанавливает список свободных слотов и емкость после загрузки.
func (a *Arena[T]) Rebuild() {
	if cap(a.Slots) < a.Max {
		slots := make([]ArenaSlot[T], len(a.Slots), a.Max)
		copy(slots, a.Slots)
		a.Slots = slots
	}
	if len(a.Slots) == 0 {
		a.Slots = append(a.Slots, ArenaSlot[T]{})
	}
	a.free = a.free[:0]
	for i := len(a.Slots) - 1; i >= 1; i-- {
		if !a.Slots[i].Live {
			a.free = append(a.free, uint32(i))
		}
	}
}
