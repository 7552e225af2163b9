package systems

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
)

func TestUpdateView(t *testing.T) {
	l := crossRoom(t)
	fixture.Player(l, gruid.Point{X: 1, Y: 3})

	UpdateView(l)

	if !PlayerHasLos(l, gruid.Point{X: 1, Y: 1}) {
		t.Error("клетка (1,1) в поле зрения")
	}
	if !PlayerHasLos(l, gruid.Point{X: 2, Y: 3}) {
		t.Error("стена рядом видна")
	}
	if PlayerHasLos(l, gruid.Point{X: 5, Y: 3}) {
		t.Error("клетка за крестом не видна")
	}
	if !l.Cave.Has(gruid.Point{X: 2, Y: 3}, domain.InfoMark) {
		t.Error("увиденная стена запоминается")
	}
}

func TestUpdateViewBlind(t *testing.T) {
	l := crossRoom(t)
	p := fixture.Player(l, gruid.Point{X: 1, Y: 1})
	p.Timed[domain.TmdBlind] = 10

	UpdateView(l)

	if !PlayerHasLos(l, gruid.Point{X: 2, Y: 1}) {
		t.Error("слепой игрок все равно в поле зрения клетки")
	}
	if l.Cave.Has(gruid.Point{X: 2, Y: 1}, domain.InfoSeen) {
		t.Error("слепой ничего не видит")
	}
}

func TestUpdateMonstersVisibility(t *testing.T) {
	reg := fixture.Registry(
		fixture.Race("kobold", 'k', 1),
		fixture.Race("ghost", 'G', 10, domain.RFInvisible),
	)
	l := fixture.Room(12, 6, 1, reg)
	fixture.Player(l, gruid.Point{X: 1, Y: 2})
	kobold := l.PlaceMonster(1, gruid.Point{X: 8, Y: 2}, false)
	ghost := l.PlaceMonster(2, gruid.Point{X: 8, Y: 3}, false)

	UpdateView(l)
	UpdateMonsters(l)

	if !l.Monster(kobold).Visible {
		t.Error("кобольд в освещенной комнате виден")
	}
	if l.Monster(ghost).Visible {
		t.Error("невидимку не видно без SEE_INVIS")
	}
	if got := l.LoreOf(l.Monster(kobold)).Sights; got != 1 {
		t.Errorf("Sights = %d, want 1", got)
	}

	l.Player.Intrinsic.Set(domain.OFSeeInvis)
	UpdateMonsters(l)
	if !l.Monster(ghost).Visible {
		t.Error("SEE_INVIS показывает невидимку")
	}
}

func TestUpdateFlow(t *testing.T) {
	l := crossRoom(t)
	fixture.Player(l, gruid.Point{X: 1, Y: 3})

	UpdateFlow(l)

	if !FlowFresh(l, gruid.Point{X: 5, Y: 3}) {
		t.Error("запах обходит крест")
	}
	if got := l.Cave.FlowCost(gruid.Point{X: 1, Y: 3}); got != 0 {
		t.Errorf("стоимость под игроком = %d, want 0", got)
	}
	if got := l.Cave.FlowCost(gruid.Point{X: 2, Y: 2}); got != 1 {
		t.Errorf("стоимость соседней клетки = %d, want 1", got)
	}
	if FlowFresh(l, gruid.Point{X: 3, Y: 3}) {
		t.Error("в стену запах не идет")
	}
	n := l.FlowN
	UpdateFlow(l)
	if l.FlowN != n+1 {
		t.Errorf("FlowN = %d, want %d", l.FlowN, n+1)
	}
}
