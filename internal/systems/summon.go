package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// SummonKind — какую разновидность монстров призывают.
type SummonKind uint8

const (
	SummonAny SummonKind = iota
	SummonKin
	SummonAnimal
	SummonSpider
	SummonHound
	SummonHydra
	SummonAngel
	SummonDemon
	SummonUndead
	SummonDragon
	SummonHiUndead
	SummonHiDragon
	SummonWraith
	SummonUnique
	SummonHiDemon
)

// nastyMon — шанс 1/nastyMon на монстра глубже уровня.
const nastyMon = 50

// summonOkay — подходит ли раса под разновидность призыва.
// kin — символ призывающего для SummonKin.
func summonOkay(r *domain.Race, kind SummonKind, kin byte) bool {
	f := &r.Flags
	uniq := r.Unique()
	ch := r.Char()
	switch kind {
	case SummonAny:
		return true
	case SummonKin:
		return ch == kin && !uniq
	case SummonAnimal:
		return f.Has(domain.RFAnimal) && !uniq
	case SummonSpider:
		return ch == 'S' && !uniq
	case SummonHound:
		return (ch == 'C' || ch == 'Z') && !uniq
	case SummonHydra:
		return ch == 'M' && !uniq
	case SummonAngel:
		return ch == 'A' && !uniq
	case SummonDemon:
		return f.Has(domain.RFDemon) && !uniq
	case SummonUndead:
		return f.Has(domain.RFUndead) && !uniq
	case SummonDragon:
		return f.Has(domain.RFDragon) && !uniq
	case SummonHiUndead:
		return ch == 'L' || ch == 'V' || ch == 'W'
	case SummonHiDragon:
		return ch == 'D'
	case SummonWraith:
		return ch == 'W' && uniq
	case SummonUnique:
		return uniq
	case SummonHiDemon:
		return ch == 'U'
	}
	return false
}

// uniqueAlive — уникальный монстр этой расы уже есть на уровне.
func uniqueAlive(l *domain.Level, race int) bool {
	for _, h := range l.Monsters.Handles() {
		if l.Monster(h).Race == race {
			return true
		}
	}
	return false
}

// PickRace выбирает расу не глубже level с весом 100/редкость.
// Возвращает 0, если подходящих рас нет.
func PickRace(l *domain.Level, level int, okay func(*domain.Race) bool) int {
	if level > 0 && l.RNG.OneIn(nastyMon) {
		d := level/4 + 2
		level += min(d, 5)
	}

	total := 0
	weights := make([]int, len(l.Reg.Races))
	for i := 1; i < len(l.Reg.Races); i++ {
		r := &l.Reg.Races[i]
		if r.Rarity <= 0 || r.Level > level {
			continue
		}
		if okay != nil && !okay(r) {
			continue
		}
		if r.Unique() && (l.Lore[i].Pkills > 0 || uniqueAlive(l, i)) {
			continue
		}
		weights[i] = max(1, 100/r.Rarity)
		total += weights[i]
	}
	if total == 0 {
		return 0
	}
	v := l.RNG.Int0(total)
	for i, w := range weights {
		if v < w {
			return i
		}
		v -= w
	}
	return 0
}

// Scatter — случайная клетка не дальше d от center, видимая из center.
func Scatter(l *domain.Level, center gruid.Point, d int) gruid.Point {
	c := l.Cave
	for k := 0; k < pickTries; k++ {
		q := gruid.Point{X: l.RNG.Spread(center.X, d), Y: l.RNG.Spread(center.Y, d)}
		if !c.InBoundsFully(q) || Distance(center, q) > d || !Los(c, center, q) {
			continue
		}
		return q
	}
	return center
}

// PlaceMonsterAux ставит монстра и, если разрешено, его стаю или свиту.
func PlaceMonsterAux(l *domain.Level, race int, p gruid.Point, asleep, groups bool) types.Handle {
	r := l.Reg.Race(race)
	if r == nil {
		return types.NilHandle
	}
	if r.Unique() && uniqueAlive(l, race) {
		return types.NilHandle
	}
	h := l.PlaceMonster(race, p, asleep)
	if h.IsNil() {
		return h
	}
	if r.Flags.Has(domain.RFMultiply) {
		l.NumRepro++
	}
	if !groups {
		return h
	}

	switch {
	case r.Flags.Has(domain.RFFriends):
		placeGroup(l, race, p, asleep, l.RNG.Int1(13))
	case r.Flags.Has(domain.RFEscort):
		kin := r.Char()
		for n := 0; n < l.RNG.Int1(6)+2; n++ {
			er := PickRace(l, r.Level, func(o *domain.Race) bool {
				return o.Char() == kin && !o.Unique() && o.Level <= r.Level && o.Index != race
			})
			if er == 0 {
				break
			}
			q := Scatter(l, p, 3)
			if l.Cave.Empty(q) {
				l.PlaceMonster(er, q, asleep)
			}
		}
	}
	return h
}

// placeGroup расселяет n сородичей по пустым клеткам вокруг p.
func placeGroup(l *domain.Level, race int, p gruid.Point, asleep bool, n int) {
	c := l.Cave
	queue := []gruid.Point{p}
	seen := map[gruid.Point]bool{p: true}
	for len(queue) > 0 && n > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < 8 && n > 0; i++ {
			q := cur.Add(DirDDD(i))
			if seen[q] || !c.InBoundsFully(q) {
				continue
			}
			seen[q] = true
			if !c.Empty(q) {
				continue
			}
			if !l.PlaceMonster(race, q, asleep).IsNil() {
				n--
				queue = append(queue, q)
			}
		}
	}
}

// SummonPossible — есть ли рядом с p место для призванного.
func SummonPossible(l *domain.Level, p gruid.Point) bool {
	c := l.Cave
	for y := p.Y - 2; y <= p.Y+2; y++ {
		for x := p.X - 2; x <= p.X+2; x++ {
			q := gruid.Point{X: x, Y: y}
			if !c.InBoundsFully(q) || Distance(p, q) > 2 {
				continue
			}
			if !c.Empty(q) || c.Feat(q) == domain.FeatGlyph {
				continue
			}
			if Projectable(c, p, q) {
				return true
			}
		}
	}
	return false
}

// SummonSpecific призывает монстра разновидности kind рядом с at.
// lev — уровень призывающего, kin — его символ для SummonKin.
func SummonSpecific(l *domain.Level, at gruid.Point, lev int, kind SummonKind, kin byte) bool {
	c := l.Cave
	var q gruid.Point
	found := false
	for i := 0; i < 20; i++ {
		q = Scatter(l, at, i/15+1)
		if !c.Empty(q) || c.Feat(q) == domain.FeatGlyph {
			continue
		}
		found = true
		break
	}
	if !found {
		return false
	}

	race := PickRace(l, (l.Depth+lev)/2+5, func(r *domain.Race) bool {
		return summonOkay(r, kind, kin)
	})
	if race == 0 {
		return false
	}
	h := PlaceMonsterAux(l, race, q, false, true)
	if h.IsNil() {
		return false
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "summon",
		"race":      l.Reg.Race(race).Name,
		"pos":       q,
		"kind":      kind,
	}).Debug("monster summoned")
	return true
}

// MultiplyMonster — попытка размножения: 18 попыток найти пустую соседнюю клетку.
func MultiplyMonster(l *domain.Level, h types.Handle) bool {
	m := l.Monster(h)
	if m == nil {
		return false
	}
	c := l.Cave
	for i := 0; i < 18; i++ {
		q := Scatter(l, m.Pos, 1)
		if !c.Empty(q) {
			continue
		}
		return !PlaceMonsterAux(l, m.Race, q, false, false).IsNil()
	}
	return false
}

// PolyRace — раса для превращения монстра: близкая по уровню, не уникальная.
// Уникальные не превращаются.
func PolyRace(l *domain.Level, race int) int {
	r := l.Reg.Race(race)
	if r == nil || r.Unique() {
		return race
	}
	lev1 := r.Level - (l.RNG.Int1(20)/l.RNG.Int1(9) + 1)
	lev2 := r.Level + (l.RNG.Int1(20)/l.RNG.Int1(9) + 1)
	for i := 0; i < 1000; i++ {
		n := PickRace(l, (l.Depth+r.Level)/2+5, nil)
		if n == 0 {
			break
		}
		nr := l.Reg.Race(n)
		if nr.Unique() || nr.Level < lev1 || nr.Level > lev2 {
			continue
		}
		return n
	}
	return race
}
