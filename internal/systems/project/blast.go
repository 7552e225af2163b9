package project

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
)

// Blast — клетки, задетые проекцией, в порядке оболочек изнутри наружу.
// Shells[d]..Shells[d+1] — клетки на расстоянии d от эпицентра.
type Blast struct {
	Center gruid.Point
	Grids  []gruid.Point
	Shells []int
}

// add кладет клетку, если не превышен предел. Лишнее отбрасывается.
func (b *Blast) add(p gruid.Point) bool {
	if len(b.Grids) >= domain.MaxBlastGrids {
		return false
	}
	b.Grids = append(b.Grids, p)
	return true
}

// Len — число задетых клеток.
func (b *Blast) Len() int { return len(b.Grids) }

// Radius — радиус последней оболочки.
func (b *Blast) Radius() int { return len(b.Shells) - 2 }

// Each обходит клетки по оболочкам. fn получает расстояние оболочки.
// Если fn возвращает false, обход прекращается.
func (b *Blast) Each(fn func(dist int, p gruid.Point) bool) {
	dist := 0
	for i, p := range b.Grids {
		for dist+1 < len(b.Shells) && b.Shells[dist+1] <= i {
			dist++
		}
		if !fn(dist, p) {
			return
		}
	}
}

// Shell — клетки на расстоянии d.
func (b *Blast) Shell(d int) []gruid.Point {
	if d < 0 || d+1 >= len(b.Shells) {
		return nil
	}
	return b.Grids[b.Shells[d]:b.Shells[d+1]]
}

// Explode собирает область взрыва радиуса rad с центром center.
// beam — уже собранные клетки луча; они относятся к нулевой оболочке,
// последняя из них (совпадающая с эпицентром) отбрасывается.
func Explode(c *domain.Cave, center gruid.Point, rad int, beam []gruid.Point) Blast {
	b := Blast{
		Center: center,
		Grids:  make([]gruid.Point, 0, 16),
		Shells: make([]int, 1, rad+2),
	}
	if n := len(beam); n > 0 {
		for _, p := range beam[:n-1] {
			b.add(p)
		}
	}

	for dist := 0; dist <= rad; dist++ {
		for y := center.Y - dist; y <= center.Y+dist; y++ {
			for x := center.X - dist; x <= center.X+dist; x++ {
				q := gruid.Point{X: x, Y: y}
				if !c.InBounds(q) {
					continue
				}
				if systems.Distance(center, q) != dist {
					continue
				}
				// Стены гасят шар.
				if !systems.Los(c, center, q) {
					continue
				}
				b.add(q)
			}
		}
		b.Shells = append(b.Shells, len(b.Grids))
	}
	return b
}
