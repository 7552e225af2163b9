package dungeon

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/utils"
)

// Константы генерации
const (
	MapWidth  = 80
	MapHeight = 40
	MaxRooms  = 14
	MinSize   = 4
	MaxSize   = 12

	// Монстров на уровне: minMAlloc + d8.
	minMAlloc = 14
	// Предметов в комнатах, в коридорах и сокровищ (среднее ± разброс).
	amtRoom = 9
	amtItem = 3
	amtGold = 3
	// Шансы клада в жилах: 1 из N.
	magmaTreasure  = 90
	quartzTreasure = 40
	// Глубина, с которой бывают пещеры вместо комнат.
	cavernDepth = 15

	townWidth  = 66
	townHeight = 22
)

// Rect - Вспомогательная структура для комнаты. Стены лежат на границе,
// пол занимает клетки X+1..X+W-1.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Inner — клетки пола.
func (r Rect) Inner() gruid.Range {
	return gruid.NewRange(r.X+1, r.Y+1, r.X+r.W, r.Y+r.H)
}

// Outer — комната вместе со стенами.
func (r Rect) Outer() gruid.Range {
	return gruid.NewRange(r.X, r.Y, r.X+r.W+1, r.Y+r.H+1)
}

// Generate создает уровень глубины depth: комнаты или пещеру, жилы,
// двери, завалы, ловушки, лестницы, монстров и предметы.
// Возвращает уровень и стартовую клетку игрока.
func Generate(depth int, reg *domain.Registry, rng *utils.RNG) (*domain.Level, gruid.Point) {
	// Город — пустая освещенная площадь с лестницей вниз.
	if depth <= 0 {
		return GenerateArena(0, townWidth, townHeight, reg, rng)
	}
	b := NewLevel(depth, reg, rng)
	if depth >= cavernDepth && rng.OneIn(8) {
		b.WithCavern()
	} else {
		b.WithRooms(MaxRooms).WithDoors()
	}
	return b.WithVeins().
		WithRubble(rng.Int1(max(2, min(10, depth/3)))).
		WithTraps(rng.Int1(max(2, min(12, depth/2+2)))).
		WithStairs(rng.Spread(3, 1)+1, rng.Int1(2)).
		WithMonsters(minMAlloc + rng.Int1(8)).
		WithObjects(rng.Spread(amtRoom, 3), rng.Spread(amtItem, 3)).
		WithGold(rng.Spread(amtGold, 3)).
		Build()
}
