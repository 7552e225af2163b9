package domain

import (
	"encoding/json"
	"testing"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/core/types/enums"
)

type token struct {
	N int `json:"n"`
}

func TestArenaStaleHandle(t *testing.T) {
	a := NewArena[token](enums.KindMonster, 1, 8)
	h := a.Insert(token{N: 1})
	if a.Get(h) == nil {
		t.Fatal("fresh handle does not resolve")
	}

	if !a.Remove(h) {
		t.Fatal("Remove() = false for live handle")
	}
	if a.Get(h) != nil {
		t.Error("removed handle still resolves")
	}
	if a.Remove(h) {
		t.Error("second Remove() = true")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestArenaReuseBumpsGeneration(t *testing.T) {
	a := NewArena[token](enums.KindMonster, 1, 8)
	old := a.Insert(token{N: 1})
	a.Remove(old)

	h := a.Insert(token{N: 2})
	if h.Index() != old.Index() {
		t.Fatalf("slot not reused: index %d, want %d", h.Index(), old.Index())
	}
	if h.Generation() <= old.Generation() {
		t.Errorf("generation %d not bumped past %d", h.Generation(), old.Generation())
	}
	if a.Get(old) != nil {
		t.Error("old handle resolves to the new occupant")
	}
	if v := a.Get(h); v == nil || v.N != 2 {
		t.Errorf("Get(new) = %v, want N=2", v)
	}
}

func TestArenaCapacity(t *testing.T) {
	a := NewArena[token](enums.KindObject, 1, 4)
	for i := 0; i < 3; i++ {
		if h := a.Insert(token{N: i}); h.IsNil() {
			t.Fatalf("insert %d rejected below Max", i)
		}
	}
	if h := a.Insert(token{N: 3}); h != types.NilHandle {
		t.Errorf("insert at Max = %v, want NilHandle", h)
	}

	a.Remove(a.HandleAt(2))
	if h := a.Insert(token{N: 4}); h.IsNil() || h.Index() != 2 {
		t.Errorf("insert after Remove = %v, want slot 2", h)
	}
}

func TestArenaForeignHandle(t *testing.T) {
	mons := NewArena[token](enums.KindMonster, 1, 8)
	objs := NewArena[token](enums.KindObject, 1, 8)
	deeper := NewArena[token](enums.KindMonster, 2, 8)

	h := mons.Insert(token{N: 1})
	objs.Insert(token{N: 1})
	deeper.Insert(token{N: 1})

	if objs.Get(h) != nil {
		t.Error("monster handle resolves in object arena")
	}
	if deeper.Get(h) != nil {
		t.Error("handle resolves on another depth")
	}
	if mons.Get(types.NilHandle) != nil {
		t.Error("NilHandle resolves")
	}
}

func TestArenaPointerSurvivesInserts(t *testing.T) {
	a := NewArena[token](enums.KindMonster, 1, 64)
	h := a.Insert(token{N: 7})
	p := a.Get(h)

	for i := 0; i < 62; i++ {
		if a.Insert(token{N: i}).IsNil() {
			t.Fatalf("insert %d rejected", i)
		}
	}
	p.N = 8

	if got := a.Get(h); got != p || got.N != 8 {
		t.Errorf("pointer moved after inserts: %p vs %p", got, p)
	}
}

func TestArenaRebuildAfterLoad(t *testing.T) {
	a := NewArena[token](enums.KindMonster, 1, 16)
	var hs []types.Handle
	for i := 0; i < 5; i++ {
		hs = append(hs, a.Insert(token{N: i}))
	}
	a.Remove(hs[1])
	a.Remove(hs[3])

	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var b Arena[token]
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	b.Rebuild()

	if cap(b.Slots) != b.Max {
		t.Errorf("cap(Slots) = %d, want %d", cap(b.Slots), b.Max)
	}
	if b.Get(hs[1]) != nil {
		t.Error("removed handle resolves after load")
	}
	if v := b.Get(hs[4]); v == nil || v.N != 4 {
		t.Errorf("Get(live) after load = %v, want N=4", v)
	}

	// Свободные слоты занимаются от младшего индекса.
	h := b.Insert(token{N: 9})
	if h.Index() != hs[1].Index() {
		t.Errorf("reused index %d, want %d", h.Index(), hs[1].Index())
	}
	if h.Generation() <= hs[1].Generation() {
		t.Error("generation not bumped after load")
	}
}
