package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// MoveStep делает один шаг от cur по линии src→dst (mmove2).
// cur должен лежать на этой линии. Только целочисленная арифметика:
// доминирующая ось сдвигается на каждом шаге, вторая — по накопленной ошибке.
// Вырожденная линия (src == dst) шагов не дает: возвращается cur.
func MoveStep(cur, src, dst gruid.Point) gruid.Point {
	if src == dst {
		return cur
	}
	dy := abs(cur.Y - src.Y)
	dx := abs(cur.X - src.X)
	dist := max(dy, dx) + 1

	dy = abs(dst.Y - src.Y)
	dx = abs(dst.X - src.X)

	var big, small int
	if dy > dx {
		big, small = dy, dx
	} else {
		big, small = dx, dy
	}

	shift := big >> 1
	for k := 0; k < dist; k++ {
		if shift <= 0 {
			shift += big
		}
		shift -= small
	}
	if shift < 0 {
		shift = 0
	}

	next := cur
	if dy > dx {
		next.Y = stepToward(cur.Y, src.Y, dst.Y)
		if shift == 0 {
			next.X = stepToward(cur.X, src.X, dst.X)
		}
	} else {
		next.X = stepToward(cur.X, src.X, dst.X)
		if shift == 0 {
			next.Y = stepToward(cur.Y, src.Y, dst.Y)
		}
	}
	return next
}

func stepToward(v, from, to int) int {
	if to < from {
		return v - 1
	}
	return v + 1
}

// Distance — расстояние Angband (длинная ось плюс половина короткой).
func Distance(a, b gruid.Point) int { return domain.Distance(a, b) }

// Los — прямая видимость между двумя клетками (алгоритм Джозефа Холла).
// Соседние клетки видны всегда; промежуточные клетки должны быть «полом».
func Los(c *domain.Cave, p1, p2 gruid.Point) bool {
	dy := p2.Y - p1.Y
	dx := p2.X - p1.X
	ay, ax := abs(dy), abs(dx)

	if ax < 2 && ay < 2 {
		return true
	}

	open := func(y, x int) bool { return c.Floor(gruid.Point{X: x, Y: y}) }

	// Строго по вертикали.
	if dx == 0 {
		if dy > 0 {
			for ty := p1.Y + 1; ty < p2.Y; ty++ {
				if !open(ty, p1.X) {
					return false
				}
			}
		} else {
			for ty := p1.Y - 1; ty > p2.Y; ty-- {
				if !open(ty, p1.X) {
					return false
				}
			}
		}
		return true
	}

	// Строго по горизонтали.
	if dy == 0 {
		if dx > 0 {
			for tx := p1.X + 1; tx < p2.X; tx++ {
				if !open(p1.Y, tx) {
					return false
				}
			}
		} else {
			for tx := p1.X - 1; tx > p2.X; tx-- {
				if !open(p1.Y, tx) {
					return false
				}
			}
		}
		return true
	}

	sx, sy := sign(dx), sign(dy)

	// Ход коня.
	if ax == 1 && ay == 2 {
		if open(p1.Y+sy, p1.X) {
			return true
		}
	} else if ay == 1 && ax == 2 {
		if open(p1.Y, p1.X+sx) {
			return true
		}
	}

	f2 := ax * ay
	f1 := f2 << 1

	if ax >= ay {
		qy := ay * ay
		m := qy << 1
		tx := p1.X + sx
		var ty int
		if qy == f2 {
			ty = p1.Y + sy
			qy -= f1
		} else {
			ty = p1.Y
		}
		for p2.X-tx != 0 {
			if !open(ty, tx) {
				return false
			}
			qy += m
			switch {
			case qy < f2:
				tx += sx
			case qy > f2:
				ty += sy
				if !open(ty, tx) {
					return false
				}
				qy -= f1
				tx += sx
			default:
				ty += sy
				qy -= f1
				tx += sx
			}
		}
		return true
	}

	qx := ax * ax
	m := qx << 1
	ty := p1.Y + sy
	var tx int
	if qx == f2 {
		tx = p1.X + sx
		qx -= f1
	} else {
		tx = p1.X
	}
	for p2.Y-ty != 0 {
		if !open(ty, tx) {
			return false
		}
		qx += m
		switch {
		case qx < f2:
			ty += sy
		case qx > f2:
			tx += sx
			if !open(ty, tx) {
				return false
			}
			qx -= f1
			ty += sy
		default:
			tx += sx
			qx -= f1
			ty += sy
		}
	}
	return true
}

// ProjectPath строит путь снаряда от src к dst, не включая src.
// Путь обрывается на дальности rng, на цели (без PFThru), на первой
// не-«полу» клетке (она входит в путь) и на существе (с PFStop).
func ProjectPath(c *domain.Cave, rng int, src, dst gruid.Point, flg domain.FlagSet[domain.ProjectFlag]) []gruid.Point {
	if src == dst {
		return nil
	}
	path := make([]gruid.Point, 0, rng)
	cur := src
	for len(path) < rng {
		cur = MoveStep(cur, src, dst)
		if !c.InBounds(cur) {
			break
		}
		path = append(path, cur)

		if !flg.Has(domain.PFThru) && cur == dst {
			break
		}
		if !c.Floor(cur) {
			break
		}
		if flg.Has(domain.PFStop) && !c.At(cur).IsEmpty() {
			break
		}
	}

	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "physics_system",
			"src":       src,
			"dst":       dst,
			"len":       len(path),
		}).Debug("project path built")
	}

	return path
}

func pathReaches(c *domain.Cave, src, dst gruid.Point, flg domain.FlagSet[domain.ProjectFlag]) bool {
	path := ProjectPath(c, domain.MaxRange, src, dst, flg)
	if len(path) == 0 {
		return false
	}
	last := path[len(path)-1]
	return c.Floor(last) && last == dst
}

// Projectable — можно ли запустить снаряд из src в dst (стены мешают, существа нет).
func Projectable(c *domain.Cave, src, dst gruid.Point) bool {
	return pathReaches(c, src, dst, domain.FlagSet[domain.ProjectFlag]{})
}

// CleanShot — то же, но существа на пути тоже мешают (для болтов).
func CleanShot(c *domain.Cave, src, dst gruid.Point) bool {
	return pathReaches(c, src, dst, domain.FlagsOf(domain.PFStop))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
