package ai

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
)

// MonWillRun — должен ли монстр убегать от игрока.
func MonWillRun(l *domain.Level, h types.Handle) bool {
	m := l.Monster(h)
	r := l.RaceOf(m)
	p := l.Player

	if m.Cdis > domain.MaxSight+5 {
		return false
	}
	if m.Afraid > 0 {
		return true
	}
	// Вблизи монстр не пугается.
	if m.Cdis <= 5 {
		return false
	}

	pLev := int64(p.Lev)
	mLev := int64(r.Level) + int64(h.Index()&8) + 25
	if mLev > pLev+4 {
		return false
	}
	if mLev+4 <= pLev {
		return true
	}

	pChp, pMhp := int64(p.Chp), int64(max(p.Mhp, 1))
	mChp, mMhp := int64(m.HP), int64(max(m.MaxHP, 1))
	pVal := pLev*pMhp + pChp*4
	mVal := mLev*mMhp + mChp*4
	return pVal*mMhp > mVal*pMhp
}

// flowTarget — точка, к которой ведет поле запаха. Монстр идет по
// свежайшей и самой дешевой соседней клетке, если игрок его не видит.
func flowTarget(l *domain.Level, m *domain.Monster, r *domain.Race) (gruid.Point, bool) {
	if !l.Opts.FlowBySound || r.Flags.HasAny(domain.RFPassWall, domain.RFKillWall) {
		return gruid.Point{}, false
	}
	c, p := l.Cave, l.Player

	if c.FlowWhen(m.Pos) < c.FlowWhen(p.Pos) {
		if c.FlowWhen(m.Pos) == 0 || !l.Opts.FlowBySmell {
			return gruid.Point{}, false
		}
	}
	if cost := c.FlowCost(m.Pos); cost > domain.FlowDepth || cost > r.Aaf {
		return gruid.Point{}, false
	}
	if systems.PlayerHasLos(l, m.Pos) {
		return gruid.Point{}, false
	}

	var when uint32
	cost := 999
	var target gruid.Point
	// Сначала диагонали.
	for i := 7; i >= 0; i-- {
		q := m.Pos.Add(systems.DirDDD(i))
		if !c.InBounds(q) {
			continue
		}
		w := c.FlowWhen(q)
		if w == 0 || w < when || c.FlowCost(q) > cost {
			continue
		}
		when, cost = w, c.FlowCost(q)
		d := systems.DirDDD(i)
		target = p.Pos.Add(gruid.Point{X: 16 * d.X, Y: 16 * d.Y})
	}
	return target, when != 0
}

// fearMoves уточняет бегство по полю запаха: off — смещение от монстра
// до точки, куда он хочет уйти (со знаком «монстр минус цель»).
func fearMoves(l *domain.Level, m *domain.Monster, r *domain.Race, off gruid.Point) (gruid.Point, bool) {
	if !l.Opts.FlowBySound {
		return off, false
	}
	c, p := l.Cave, l.Player
	dest := m.Pos.Sub(off)

	if c.FlowWhen(m.Pos) < c.FlowWhen(p.Pos) {
		return off, false
	}
	if cost := c.FlowCost(m.Pos); cost > domain.FlowDepth || cost > r.Aaf {
		return off, false
	}

	var when uint32
	score := -1
	var best gruid.Point
	for i := 7; i >= 0; i-- {
		q := m.Pos.Add(systems.DirDDD(i))
		if !c.InBounds(q) {
			continue
		}
		w := c.FlowWhen(q)
		if w == 0 || w < when {
			continue
		}
		dis := domain.Distance(q, dest)
		s := max(0, 5000/(dis+3)-500/(c.FlowCost(q)+1))
		if s < score {
			continue
		}
		when, score, best = w, s, q
	}
	if when == 0 {
		return off, false
	}
	return m.Pos.Sub(best), true
}

// distOffsets[d] — все смещения, удаленные ровно на d по угловой метрике.
var distOffsets = func() [10][]gruid.Point {
	var out [10][]gruid.Point
	for d := 1; d < 10; d++ {
		for y := -d; y <= d; y++ {
			for x := -d; x <= d; x++ {
				q := gruid.Point{X: x, Y: y}
				if domain.Distance(gruid.Point{}, q) == d {
					out[d] = append(out[d], q)
				}
			}
		}
	}
	return out
}()

// findSafety ищет рядом клетку вне поля зрения игрока, как можно дальше
// от него. Возвращает смещение «монстр минус цель».
func findSafety(l *domain.Level, m *domain.Monster) (gruid.Point, bool) {
	if !l.Opts.FlowBySound {
		return gruid.Point{}, false
	}
	c, p := l.Cave, l.Player
	var g gruid.Point
	gdis := 0
	for d := 1; d < 10; d++ {
		for _, off := range distOffsets[d] {
			q := m.Pos.Add(off)
			if !c.InBoundsFully(q) || !c.Floor(q) {
				continue
			}
			if c.FlowWhen(q) < c.FlowWhen(p.Pos) {
				continue
			}
			if c.FlowCost(q) > c.FlowCost(m.Pos)+2*d {
				continue
			}
			if systems.PlayerHasLos(l, q) {
				continue
			}
			if dis := domain.Distance(q, p.Pos); dis > gdis {
				g, gdis = q, dis
			}
		}
		if gdis > 0 {
			return m.Pos.Sub(g), true
		}
	}
	return gruid.Point{}, false
}

func findSafetyOr(l *domain.Level, m *domain.Monster, off gruid.Point) (gruid.Point, bool) {
	if o, ok := findSafety(l, m); ok {
		return o, true
	}
	return off, false
}

// findHiding — укрытие для засады стаи: не ближе 3/4 текущего расстояния
// до игрока, вне его поля зрения и в прямой видимости монстра.
func findHiding(l *domain.Level, m *domain.Monster) (gruid.Point, bool) {
	c, p := l.Cave, l.Player
	minDis := domain.Distance(p.Pos, m.Pos)*3/4 + 2
	var g gruid.Point
	gdis := 999
	for d := 1; d < 10; d++ {
		for _, off := range distOffsets[d] {
			q := m.Pos.Add(off)
			if !c.InBoundsFully(q) || !c.Empty(q) {
				continue
			}
			if systems.PlayerHasLos(l, q) || !systems.CleanShot(c, m.Pos, q) {
				continue
			}
			if dis := domain.Distance(q, p.Pos); dis < gdis && dis >= minDis {
				g, gdis = q, dis
			}
		}
		if gdis < 999 {
			return m.Pos.Sub(g), true
		}
	}
	return gruid.Point{}, false
}

// GetMoves выбирает пять направлений в порядке предпочтения. Возвращает
// false, если двигаться некуда.
func GetMoves(l *domain.Level, h types.Handle) ([5]int, bool) {
	var mm [5]int
	m := l.Monster(h)
	r := l.RaceOf(m)
	p := l.Player

	target := p.Pos
	if t, ok := flowTarget(l, m, r); ok {
		target = t
	}
	off := m.Pos.Sub(target)
	done := false

	walker := !r.Flags.HasAny(domain.RFPassWall, domain.RFKillWall)

	// Стая животных выманивает игрока из коридора.
	if l.Opts.SmartPacks && r.Flags.Has(domain.RFFriends) && r.Flags.Has(domain.RFAnimal) && walker {
		room := 0
		for i := 0; i < 8; i++ {
			if l.Cave.Has(p.Pos.Add(systems.DirDDD(i)), domain.InfoRoom) {
				room++
			}
		}
		if room < 8 && p.Chp > p.Mhp/2 {
			if o, ok := findHiding(l, m); ok {
				off, done = o, true
			}
		}
	}

	if !done && MonWillRun(l, h) {
		safe := false
		if l.Opts.SmartMonsters {
			off, safe = findSafetyOr(l, m, off)
		}
		if !safe {
			off = gruid.Point{X: -off.X, Y: -off.Y}
		} else if o, ok := fearMoves(l, m, r, off); ok {
			off, done = o, true
		}
	}

	// Стая окружает игрока.
	if !done && l.Opts.SmartPacks && r.Flags.Has(domain.RFFriends) {
		var t gruid.Point
		for i := 0; i < 8; i++ {
			t = p.Pos.Add(systems.DirDDD(int(h.Index()) + i))
			if t == m.Pos {
				t = p.Pos
				break
			}
			if !l.Cave.Empty(t) {
				continue
			}
			break
		}
		off = m.Pos.Sub(t)
	}

	if off.X == 0 && off.Y == 0 {
		return mm, false
	}
	return moveDirs(off), true
}

// moveDirs раскладывает смещение «монстр минус цель» в пять направлений:
// основное и четыре запасных, без «ромбовидного» обхода.
func moveDirs(off gruid.Point) [5]int {
	x, y := off.X, off.Y
	ax, ay := abs(x), abs(y)

	moveVal := 0
	if y < 0 {
		moveVal += 8
	}
	if x > 0 {
		moveVal += 4
	}
	if ay > ax<<1 {
		moveVal += 2
	} else if ax > ay<<1 {
		moveVal++
	}

	pick := func(first int, cond bool, a, b [4]int) [5]int {
		alt := b
		if cond {
			alt = a
		}
		return [5]int{first, alt[0], alt[1], alt[2], alt[3]}
	}

	switch moveVal {
	case 0:
		return pick(9, ay > ax, [4]int{8, 6, 7, 3}, [4]int{6, 8, 3, 7})
	case 1, 9:
		return pick(6, y < 0, [4]int{3, 9, 2, 8}, [4]int{9, 3, 8, 2})
	case 2, 6:
		return pick(8, x < 0, [4]int{9, 7, 6, 4}, [4]int{7, 9, 4, 6})
	case 4:
		return pick(7, ay > ax, [4]int{8, 4, 9, 1}, [4]int{4, 8, 1, 9})
	case 5, 13:
		return pick(4, y < 0, [4]int{1, 7, 2, 8}, [4]int{7, 1, 8, 2})
	case 8:
		return pick(3, ay > ax, [4]int{2, 6, 1, 9}, [4]int{6, 2, 9, 1})
	case 10, 14:
		return pick(2, x < 0, [4]int{3, 1, 6, 4}, [4]int{1, 3, 4, 6})
	default:
		return pick(1, ay > ax, [4]int{2, 4, 3, 7}, [4]int{4, 2, 7, 3})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
