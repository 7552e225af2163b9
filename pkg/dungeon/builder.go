package dungeon

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/logger"
	"github.com/angband/angband-sub026/pkg/utils"
)

// room — вырезанная комната: габариты и клетка, к которой ведут коридоры.
type room struct {
	Rect
	anchor gruid.Point
	// vault — внутренняя комната с сокровищем.
	vault gruid.Point
	inner bool
}

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	depth     int
	width     int
	height    int
	rooms     []room
	doorSpots []gruid.Point
	start     gruid.Point
	level     *domain.Level
	reg       *domain.Registry
	rng       *utils.RNG
}

// NewLevel создает новый builder для уровня
func NewLevel(depth int, reg *domain.Registry, rng *utils.RNG) *LevelBuilder {
	return &LevelBuilder{
		depth:  depth,
		width:  MapWidth,
		height: MapHeight,
		reg:    reg,
		rng:    rng,
	}
}

// WithSize устанавливает размер карты. Вызывается до первой вырезки.
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

func (b *LevelBuilder) randRange(lo, hi int) int {
	return lo + b.rng.Int0(hi-lo+1)
}

// cave лениво создает уровень: гранит, обнесенный вечной стеной.
func (b *LevelBuilder) cave() *domain.Cave {
	if b.level == nil {
		b.level = domain.NewLevel(b.depth, b.width, b.height, b.reg, b.rng)
		g := b.level.Cave.Grid()
		g.Fill(rl.Cell(domain.FeatPermSolid))
		g.Slice(g.Range().Shift(1, 1, -1, -1)).Fill(rl.Cell(domain.FeatWallExtra))
	}
	return b.level.Cave
}

// WithRooms вырезает до maxRooms непересекающихся комнат и соединяет
// каждую с предыдущей Г-образным коридором.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	c := b.cave()
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinSize, MaxSize)
		h := b.randRange(MinSize, min(MaxSize, b.height/3))
		if b.width-w-2 < 1 || b.height-h-2 < 1 {
			continue
		}
		r := Rect{X: b.randRange(1, b.width-w-2), Y: b.randRange(1, b.height-h-2), W: w, H: h}

		failed := false
		for _, other := range b.rooms {
			if r.Intersects(other.Rect) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		nr := b.buildRoom(b.pickRoomKind(), r)
		if len(b.rooms) > 0 {
			prev := b.rooms[len(b.rooms)-1].anchor
			if b.rng.OneIn(2) {
				b.digH(prev.X, nr.anchor.X, prev.Y)
				b.digV(prev.Y, nr.anchor.Y, nr.anchor.X)
			} else {
				b.digV(prev.Y, nr.anchor.Y, prev.X)
				b.digH(prev.X, nr.anchor.X, nr.anchor.Y)
			}
		}
		b.rooms = append(b.rooms, nr)
	}
	if len(b.rooms) > 0 {
		b.start = b.rooms[0].anchor
	} else {
		// Ни одна комната не влезла: хотя бы клетка пола в центре.
		b.start = gruid.Point{X: b.width / 2, Y: b.height / 2}
		c.SetFeat(b.start, domain.FeatFloor)
	}
	return b
}

// dig прокладывает коридор через клетку p. Пробитая поперек внешняя
// стена комнаты запоминается как место для двери.
func (b *LevelBuilder) dig(p gruid.Point, horizontal bool) {
	c := b.level.Cave
	f := c.Feat(p)
	switch {
	case f == domain.FeatWallOuter:
		a, z := p.Shift(0, -1), p.Shift(0, 1)
		if !horizontal {
			a, z = p.Shift(-1, 0), p.Shift(1, 0)
		}
		if c.Feat(a) == domain.FeatWallOuter && c.Feat(z) == domain.FeatWallOuter {
			b.doorSpots = append(b.doorSpots, p)
		}
		c.SetFeat(p, domain.FeatFloor)
	case f.IsGranite(), f.IsVein():
		if c.InBoundsFully(p) {
			c.SetFeat(p, domain.FeatFloor)
		}
	}
}

func (b *LevelBuilder) digH(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.dig(gruid.Point{X: x, Y: y}, true)
	}
}

func (b *LevelBuilder) digV(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.dig(gruid.Point{X: x, Y: y}, false)
	}
}

// WithDoors ставит двери в места, где коридоры пробили стены комнат.
func (b *LevelBuilder) WithDoors() *LevelBuilder {
	c := b.cave()
	for _, p := range b.doorSpots {
		if c.Feat(p) != domain.FeatFloor {
			continue
		}
		c.SetFeat(p, b.randomDoor())
	}
	return b
}

// randomDoor: открытая, сломанная, потайная или закрытая (иногда запертая
// или заклиненная).
func (b *LevelBuilder) randomDoor() domain.Feature {
	switch k := b.rng.Int0(1000); {
	case k < 300:
		return domain.FeatOpen
	case k < 400:
		return domain.FeatBroken
	case k < 600:
		return domain.FeatSecret
	}
	switch k := b.rng.Int0(400); {
	case k < 300:
		return domain.FeatDoorHead
	case k < 399:
		return domain.FeatDoorHead + domain.Feature(b.rng.Int1(7))
	}
	return domain.FeatDoorHead + 0x08 + domain.Feature(b.rng.Int0(8))
}

// cavePath — соседи для проверки связности пещеры.
type cavePath struct {
	c   *domain.Cave
	nbs paths.Neighbors
}

func (cp *cavePath) Neighbors(p gruid.Point) []gruid.Point {
	return cp.nbs.All(p, func(q gruid.Point) bool {
		return cp.c.InBounds(q) && cp.c.Feat(q).Passable()
	})
}

// WithCavern строит пещеру клеточным автоматом и оставляет только
// компоненту связности, в которой стартует игрок.
func (b *LevelBuilder) WithCavern() *LevelBuilder {
	c := b.cave()
	g := c.Grid()
	inner := g.Slice(g.Range().Shift(1, 1, -1, -1))
	r := rand.New(rand.NewPCG(uint64(b.rng.Int0(1<<30)), uint64(b.depth)))
	mgen := rl.MapGen{Rand: r, Grid: inner}
	rules := []rl.CellularAutomataRule{
		{WCutoff1: 5, WCutoff2: 2, Reps: 4, WallsOutOfRange: true},
		{WCutoff1: 5, WCutoff2: 25, Reps: 3, WallsOutOfRange: true},
	}
	mgen.CellularAutomataCave(rl.Cell(domain.FeatWallExtra), rl.Cell(domain.FeatFloor), 0.42, rules)

	// Старт — в самой большой из нескольких найденных пещер.
	pr := paths.NewPathRange(c.Range())
	cp := &cavePath{c: c}
	start, best := gruid.Point{X: b.width / 2, Y: b.height / 2}, 0
	for i := 0; i < 10; i++ {
		p, ok := b.randomCell(func(p gruid.Point) bool { return c.Feat(p) == domain.FeatFloor })
		if !ok {
			break
		}
		if n := len(pr.CCMap(cp, p)); n > best {
			start, best = p, n
		}
	}
	if best == 0 {
		c.SetFeat(start, domain.FeatFloor)
	}
	pr.CCMap(cp, start)
	mgen.Grid = g
	mgen.KeepCC(pr, start, rl.Cell(domain.FeatWallExtra))
	b.permBorder()
	b.start = start
	return b
}

// permBorder заново обносит карту вечной стеной.
func (b *LevelBuilder) permBorder() {
	c := b.level.Cave
	for x := 0; x < b.width; x++ {
		c.SetFeat(gruid.Point{X: x, Y: 0}, domain.FeatPermSolid)
		c.SetFeat(gruid.Point{X: x, Y: b.height - 1}, domain.FeatPermSolid)
	}
	for y := 0; y < b.height; y++ {
		c.SetFeat(gruid.Point{X: 0, Y: y}, domain.FeatPermSolid)
		c.SetFeat(gruid.Point{X: b.width - 1, Y: y}, domain.FeatPermSolid)
	}
}

// WithVeins прокладывает жилы магмы и кварца по изолиниям шума
// OpenSimplex. Часть жил несет клад.
func (b *LevelBuilder) WithVeins() *LevelBuilder {
	c := b.cave()
	noise := opensimplex.New(int64(b.rng.Int0(1 << 30)))
	const scale = 7.0
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			p := gruid.Point{X: x, Y: y}
			if c.Feat(p) != domain.FeatWallExtra {
				continue
			}
			v := noise.Eval2(float64(x)/scale, float64(y)/scale)
			switch {
			case v > 0.30 && v < 0.40:
				f := domain.FeatMagma
				if b.rng.OneIn(magmaTreasure) {
					f = domain.FeatMagmaH
				}
				c.SetFeat(p, f)
			case v < -0.30 && v > -0.40:
				f := domain.FeatQuartz
				if b.rng.OneIn(quartzTreasure) {
					f = domain.FeatQuartzH
				}
				c.SetFeat(p, f)
			}
		}
	}
	return b
}

// randomCell — случайная клетка внутри карты, удовлетворяющая ok.
func (b *LevelBuilder) randomCell(ok func(gruid.Point) bool) (gruid.Point, bool) {
	for i := 0; i < 1000; i++ {
		p := gruid.Point{X: b.randRange(1, b.width-2), Y: b.randRange(1, b.height-2)}
		if ok(p) {
			return p, true
		}
	}
	return gruid.Point{}, false
}

func (b *LevelBuilder) corridor(p gruid.Point) bool {
	c := b.level.Cave
	return c.Naked(p) && !c.Has(p, domain.InfoRoom) && p != b.start
}

func (b *LevelBuilder) roomFloor(p gruid.Point) bool {
	c := b.level.Cave
	return c.Naked(p) && (c.Has(p, domain.InfoRoom) || len(b.rooms) == 0) && p != b.start
}

func (b *LevelBuilder) anyFloor(p gruid.Point) bool {
	return b.level.Cave.Naked(p) && p != b.start
}

// WithRubble заваливает n клеток коридоров.
func (b *LevelBuilder) WithRubble(n int) *LevelBuilder {
	b.cave()
	for i := 0; i < n; i++ {
		if p, ok := b.randomCell(b.corridor); ok {
			b.level.Cave.SetFeat(p, domain.FeatRubble)
		}
	}
	return b
}

// WithTraps прячет n ловушек.
func (b *LevelBuilder) WithTraps(n int) *LevelBuilder {
	b.cave()
	for i := 0; i < n; i++ {
		if p, ok := b.randomCell(b.anyFloor); ok {
			systems.PlaceTrap(b.level, p)
		}
	}
	return b
}

// WithStairs ставит down лестниц вниз и up вверх (на поверхности вверх
// идти некуда).
func (b *LevelBuilder) WithStairs(down, up int) *LevelBuilder {
	c := b.cave()
	if b.depth == 0 {
		up = 0
	}
	if b.depth >= domain.MaxDepth-1 {
		down = 0
	}
	for i := 0; i < down+up; i++ {
		p, ok := b.randomCell(b.roomFloor)
		if !ok {
			continue
		}
		f := domain.FeatMore
		if i >= down {
			f = domain.FeatLess
		}
		c.SetFeat(p, f)
	}
	return b
}

// WithMonsters расселяет n монстров (со стаями) вдали от старта.
// Все спят.
func (b *LevelBuilder) WithMonsters(n int) *LevelBuilder {
	c := b.cave()
	if b.reg == nil {
		return b
	}
	far := func(p gruid.Point) bool {
		return c.Empty(p) && domain.Distance(p, b.start) > domain.MaxSight/2
	}
	for i := 0; i < n; i++ {
		race := systems.PickRace(b.level, b.depth, nil)
		if race == 0 {
			break
		}
		p, ok := b.randomCell(far)
		if !ok {
			break
		}
		systems.PlaceMonsterAux(b.level, race, p, true, true)
	}
	return b
}

// WithObjects кладет inRooms предметов в комнаты и anywhere — куда угодно.
// Сокровищницы внутренних комнат получают хороший предмет.
func (b *LevelBuilder) WithObjects(inRooms, anywhere int) *LevelBuilder {
	b.cave()
	if b.reg == nil {
		return b
	}
	put := func(ok func(gruid.Point) bool, n int) {
		for i := 0; i < n; i++ {
			if p, found := b.randomCell(ok); found {
				systems.PlaceObject(b.level, p, b.depth, false, false)
			}
		}
	}
	put(b.roomFloor, inRooms)
	put(b.anyFloor, anywhere)
	for _, r := range b.rooms {
		if r.inner {
			systems.PlaceObject(b.level, r.vault, b.depth+2, true, false)
		}
	}
	return b
}

// WithGold рассыпает n кучек сокровищ.
func (b *LevelBuilder) WithGold(n int) *LevelBuilder {
	b.cave()
	for i := 0; i < n; i++ {
		if p, ok := b.randomCell(b.anyFloor); ok {
			systems.PlaceGold(b.level, p, b.depth)
		}
	}
	return b
}

// Build собирает и возвращает готовый уровень
func (b *LevelBuilder) Build() (*domain.Level, gruid.Point) {
	b.cave()
	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"depth":     b.depth,
		"rooms":     len(b.rooms),
		"doors":     len(b.doorSpots),
		"monsters":  b.level.Monsters.Len(),
		"objects":   b.level.Objects.Len(),
	}).Info("level generated")
	return b.level, b.start
}
