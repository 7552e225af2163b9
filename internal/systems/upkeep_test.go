package systems

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
)

func TestProcessWorld(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry(fixture.Race("kobold", 'k', 1, domain.RFRegenerate)))
	p := fixture.Player(l, gruid.Point{X: 2, Y: 2})
	msgs := fixture.Capture(l)

	p.Chp = p.Mhp - 10
	p.Timed[domain.TmdAfraid] = 1
	ProcessWorld(l)
	if p.Chp != p.Mhp-9 {
		t.Errorf("лечение: chp = %d, mhp = %d", p.Chp, p.Mhp)
	}
	if p.Is(domain.TmdAfraid) || msgs.Count("You feel bolder now.") != 1 {
		t.Errorf("страх прошел: %v", msgs.Lines)
	}

	// Яд ранит и мешает лечиться.
	p.Timed[domain.TmdPoisoned] = 5
	chp := p.Chp
	ProcessWorld(l)
	if p.Chp != chp-1 {
		t.Errorf("яд: chp = %d, было %d", p.Chp, chp)
	}
	if p.Timed[domain.TmdPoisoned] != 4 {
		t.Errorf("яд слабеет: %d", p.Timed[domain.TmdPoisoned])
	}
}

func TestRegenMonsters(t *testing.T) {
	race := fixture.Race("troll", 'T', 5, domain.RFRegenerate)
	race.HP = domain.RandomValue{Base: 300}
	l := fixture.Room(10, 6, 3, fixture.Registry(race))
	fixture.Player(l, gruid.Point{X: 2, Y: 2})
	h := l.PlaceMonster(1, gruid.Point{X: 6, Y: 3}, false)
	m := l.Monster(h)
	m.MaxHP, m.HP = 300, 100

	RegenMonsters(l)
	if m.HP != 106 {
		t.Errorf("регенерация: hp = %d, want 106", m.HP)
	}
}
