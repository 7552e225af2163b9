package dungeon

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/angband/angband-sub026/internal/domain"
)

// RoomKind — форма комнаты.
type RoomKind int

const (
	RoomSimple RoomKind = iota
	RoomOverlap
	RoomCross
	RoomInner
)

// RoomTemplate — вес формы и минимальная глубина, с которой она встречается.
type RoomTemplate struct {
	Kind     RoomKind
	MinDepth int
	Weight   int
}

// RoomTemplates — доступные формы комнат.
var RoomTemplates = []RoomTemplate{
	{Kind: RoomSimple, MinDepth: 0, Weight: 60},
	{Kind: RoomOverlap, MinDepth: 1, Weight: 20},
	{Kind: RoomCross, MinDepth: 3, Weight: 12},
	{Kind: RoomInner, MinDepth: 5, Weight: 8},
}

func (b *LevelBuilder) pickRoomKind() RoomKind {
	total := 0
	for _, t := range RoomTemplates {
		if t.MinDepth <= b.depth {
			total += t.Weight
		}
	}
	v := b.rng.Int0(total)
	for _, t := range RoomTemplates {
		if t.MinDepth > b.depth {
			continue
		}
		if v < t.Weight {
			return t.Kind
		}
		v -= t.Weight
	}
	return RoomSimple
}

// carve вырезает прямоугольник r: стены по краю, пол внутри. Стены не
// затирают уже вырезанный пол (для пересекающихся прямоугольников).
func (b *LevelBuilder) carve(r Rect, lit bool) {
	c := b.level.Cave
	info := domain.InfoRoom
	if lit {
		info |= domain.InfoGlow
	}
	r.Outer().Iter(func(p gruid.Point) {
		if !c.InBoundsFully(p) {
			return
		}
		if f := c.Feat(p); f.IsGranite() && f != domain.FeatWallInner || f.IsVein() {
			c.SetFeat(p, domain.FeatWallOuter)
		}
		c.SetInfo(p, info)
	})
	b.level.Cave.Grid().Slice(r.Inner()).Fill(rl.Cell(domain.FeatFloor))
}

// buildRoom строит комнату выбранной формы внутри r.
func (b *LevelBuilder) buildRoom(kind RoomKind, r Rect) room {
	lit := b.depth <= b.rng.Int1(25)
	cx, cy := r.Center()
	nr := room{Rect: r, anchor: gruid.Point{X: cx, Y: cy}}

	switch {
	case kind == RoomOverlap && r.W >= 6 && r.H >= 6:
		// Два прямоугольника с общим центром: широкий и высокий.
		wide := Rect{X: r.X, Y: cy - r.H/4 - 1, W: r.W, H: r.H/2 + 1}
		tall := Rect{X: cx - r.W/4 - 1, Y: r.Y, W: r.W/2 + 1, H: r.H}
		b.carve(wide, lit)
		b.carve(tall, lit)
	case kind == RoomCross && r.W >= 6 && r.H >= 6:
		// Крест: полосы шириной в треть комнаты.
		b.carve(Rect{X: r.X, Y: cy - 2, W: r.W, H: 4}, lit)
		b.carve(Rect{X: cx - 2, Y: r.Y, W: 4, H: r.H}, lit)
		if b.rng.OneIn(3) {
			b.level.Cave.SetFeat(nr.anchor, domain.FeatWallInner)
			nr.anchor = gruid.Point{X: cx - 1, Y: cy}
		}
	case kind == RoomInner && r.W >= 8 && r.H >= 8:
		b.carve(r, lit)
		b.buildInner(&nr)
	default:
		b.carve(r, lit)
		// Иногда комната с колоннами через клетку.
		if r.W >= 6 && r.H >= 6 && b.rng.OneIn(20) {
			r.Inner().Iter(func(p gruid.Point) {
				if (p.X-r.X)%2 == 0 && (p.Y-r.Y)%2 == 0 {
					b.level.Cave.SetFeat(p, domain.FeatWallInner)
				}
			})
			nr.anchor = gruid.Point{X: r.X + 1, Y: r.Y + 1}
		}
	}
	return nr
}

// buildInner ставит внутри комнаты вторую, с потайной или запертой дверью
// и сокровищем в центре. Коридоры подходят к внешнему кольцу.
func (b *LevelBuilder) buildInner(nr *room) {
	c := b.level.Cave
	in := Rect{X: nr.X + 2, Y: nr.Y + 2, W: nr.W - 4, H: nr.H - 4}
	in.Outer().Iter(func(p gruid.Point) {
		if !in.Inner().In(p) {
			c.SetFeat(p, domain.FeatWallInner)
		}
	})

	// Дверь в случайной стене внутренней комнаты.
	cx, cy := in.Center()
	var door gruid.Point
	switch b.rng.Int0(4) {
	case 0:
		door = gruid.Point{X: cx, Y: in.Y}
	case 1:
		door = gruid.Point{X: cx, Y: in.Y + in.H}
	case 2:
		door = gruid.Point{X: in.X, Y: cy}
	default:
		door = gruid.Point{X: in.X + in.W, Y: cy}
	}
	if b.rng.OneIn(2) {
		c.SetFeat(door, domain.FeatSecret)
	} else {
		c.SetFeat(door, domain.FeatDoorHead+domain.Feature(b.rng.Int1(7)))
	}

	nr.anchor = gruid.Point{X: nr.X + 1, Y: nr.Y + 1}
	nr.vault = gruid.Point{X: cx, Y: cy}
	nr.inner = true
}
