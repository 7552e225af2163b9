package dungeon

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/utils"
)

// GenerateArena создает открытую освещенную арену w×h с несколькими
// колоннами и лестницей вниз. Монстров на ней нет: их ставит вызывающий.
// Стартовая клетка — центр.
func GenerateArena(depth, w, h int, reg *domain.Registry, rng *utils.RNG) (*domain.Level, gruid.Point) {
	b := NewLevel(depth, reg, rng).WithSize(w, h)
	c := b.cave()
	arena := Rect{X: 0, Y: 0, W: w - 1, H: h - 1}
	c.Grid().Slice(arena.Inner()).Fill(rl.Cell(domain.FeatFloor))
	arena.Inner().Iter(func(p gruid.Point) {
		c.SetInfo(p, domain.InfoRoom|domain.InfoGlow)
	})
	b.start = gruid.Point{X: w / 2, Y: h / 2}

	// Колонны держатся подальше от центра.
	for i := 0; i < (w*h)/120; i++ {
		p, ok := b.randomCell(func(p gruid.Point) bool {
			return c.Naked(p) && domain.Distance(p, b.start) > 3
		})
		if ok {
			c.SetFeat(p, domain.FeatWallInner)
		}
	}
	return b.WithStairs(1, 0).Build()
}
