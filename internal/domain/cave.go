package domain

import (
	"encoding/json"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/angband/angband-sub026/internal/core/types"
)

// CaveInfo — битовые признаки клетки.
type CaveInfo uint8

const (
	// InfoMark — игрок помнит клетку.
	InfoMark CaveInfo = 1 << iota
	// InfoGlow — клетка освещена сама по себе.
	InfoGlow
	// InfoIcky — внутренность хранилища.
	InfoIcky
	InfoRoom
	// InfoSeen/InfoView — клетка видна игроку / в поле зрения.
	InfoSeen
	InfoView
	InfoTemp
	InfoWall
)

// OccKind — кто стоит в клетке.
type OccKind uint8

const (
	OccEmpty OccKind = iota
	OccPlayer
	OccMonster
)

// Occupant — содержимое клетки: пусто, игрок или монстр.
type Occupant struct {
	Kind OccKind      `json:"k,omitempty"`
	Mon  types.Handle `json:"m,omitempty"`
}

func Nobody() Occupant                   { return Occupant{} }
func PlayerHere() Occupant               { return Occupant{Kind: OccPlayer} }
func MonsterHere(h types.Handle) Occupant { return Occupant{Kind: OccMonster, Mon: h} }

func (o Occupant) IsEmpty() bool  { return o.Kind == OccEmpty }
func (o Occupant) IsPlayer() bool { return o.Kind == OccPlayer }

// Monster — ссылка на монстра, если он здесь стоит.
func (o Occupant) Monster() (types.Handle, bool) {
	if o.Kind != OccMonster {
		return types.NilHandle, false
	}
	return o.Mon, true
}

// Cave — сетка уровня: рельеф, признаки, кто стоит и что лежит.
type Cave struct {
	W int
	H int

	feat rl.Grid
	Info []CaveInfo
	Occ  []Occupant
	// Obj — голова стопки предметов в клетке.
	Obj []types.Handle

	// When/Cost — поле запаха и звука от игрока. When — номер обновления,
	// Cost — шагов до игрока.
	When []uint32
	Cost []uint16
}

// NewCave создает пещеру, залитую гранитом.
func NewCave(w, h int) *Cave {
	n := w * h
	c := &Cave{
		W:    w,
		H:    h,
		feat: rl.NewGrid(w, h),
		Info: make([]CaveInfo, n),
		Occ:  make([]Occupant, n),
		Obj:  make([]types.Handle, n),
		When: make([]uint32, n),
		Cost: make([]uint16, n),
	}
	c.feat.Fill(rl.Cell(FeatWallExtra))
	return c
}

func (c *Cave) idx(p gruid.Point) int { return p.Y*c.W + p.X }

// InBounds — клетка внутри карты.
func (c *Cave) InBounds(p gruid.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.W && p.Y < c.H
}

// InBoundsFully — клетка внутри карты и не на ее краю.
func (c *Cave) InBoundsFully(p gruid.Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < c.W-1 && p.Y < c.H-1
}

// Range — прямоугольник всей карты.
func (c *Cave) Range() gruid.Range { return gruid.NewRange(0, 0, c.W, c.H) }

// Feat — рельеф. За пределами карты — вечная стена.
func (c *Cave) Feat(p gruid.Point) Feature {
	if !c.InBounds(p) {
		return FeatPermSolid
	}
	return Feature(c.feat.At(p))
}

func (c *Cave) SetFeat(p gruid.Point, f Feature) {
	if c.InBounds(p) {
		c.feat.Set(p, rl.Cell(f))
	}
}

// Grid отдает сетку рельефа (генератор уровней работает с ней напрямую).
func (c *Cave) Grid() rl.Grid { return c.feat }

func (c *Cave) Has(p gruid.Point, f CaveInfo) bool {
	return c.InBounds(p) && c.Info[c.idx(p)]&f != 0
}

func (c *Cave) SetInfo(p gruid.Point, f CaveInfo) {
	if c.InBounds(p) {
		c.Info[c.idx(p)] |= f
	}
}

func (c *Cave) ClearInfo(p gruid.Point, f CaveInfo) {
	if c.InBounds(p) {
		c.Info[c.idx(p)] &^= f
	}
}

func (c *Cave) At(p gruid.Point) Occupant {
	if !c.InBounds(p) {
		return Nobody()
	}
	return c.Occ[c.idx(p)]
}

func (c *Cave) SetAt(p gruid.Point, o Occupant) {
	if c.InBounds(p) {
		c.Occ[c.idx(p)] = o
	}
}

// ObjAt — первый предмет стопки в клетке.
func (c *Cave) ObjAt(p gruid.Point) types.Handle {
	if !c.InBounds(p) {
		return types.NilHandle
	}
	return c.Obj[c.idx(p)]
}

func (c *Cave) SetObjAt(p gruid.Point, h types.Handle) {
	if c.InBounds(p) {
		c.Obj[c.idx(p)] = h
	}
}

// Floor — клетка пропускает снаряды и взгляд.
func (c *Cave) Floor(p gruid.Point) bool { return c.Feat(p).Passable() }

// Empty — пол, на котором никто не стоит.
func (c *Cave) Empty(p gruid.Point) bool { return c.Floor(p) && c.At(p).IsEmpty() }

// Naked — чистый пол: без существ и предметов.
func (c *Cave) Naked(p gruid.Point) bool {
	return c.Feat(p) == FeatFloor && c.At(p).IsEmpty() && c.ObjAt(p).IsNil()
}

func (c *Cave) FlowWhen(p gruid.Point) uint32 {
	if !c.InBounds(p) {
		return 0
	}
	return c.When[c.idx(p)]
}

func (c *Cave) FlowCost(p gruid.Point) int {
	if !c.InBounds(p) {
		return 0
	}
	return int(c.Cost[c.idx(p)])
}

func (c *Cave) SetFlow(p gruid.Point, when uint32, cost int) {
	if c.InBounds(p) {
		i := c.idx(p)
		c.When[i] = when
		c.Cost[i] = uint16(cost)
	}
}

type caveJSON struct {
	W    int            `json:"w"`
	H    int            `json:"h"`
	Feat []Feature      `json:"feat"`
	Info []CaveInfo     `json:"info"`
	Occ  []Occupant     `json:"occ"`
	Obj  []types.Handle `json:"obj"`
}

// MarshalJSON сохраняет пещеру без поля запаха: оно пересчитывается.
func (c *Cave) MarshalJSON() ([]byte, error) {
	feat := make([]Feature, 0, c.W*c.H)
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			feat = append(feat, c.Feat(gruid.Point{X: x, Y: y}))
		}
	}
	return json.Marshal(caveJSON{W: c.W, H: c.H, Feat: feat, Info: c.Info, Occ: c.Occ, Obj: c.Obj})
}

func (c *Cave) UnmarshalJSON(b []byte) error {
	var raw caveJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	n := raw.W * raw.H
	if len(raw.Feat) != n || len(raw.Info) != n || len(raw.Occ) != n || len(raw.Obj) != n {
		return &ParseError{What: "cave size", Value: "mismatched cell arrays"}
	}
	*c = *NewCave(raw.W, raw.H)
	for i, f := range raw.Feat {
		c.SetFeat(gruid.Point{X: i % raw.W, Y: i / raw.W}, f)
	}
	copy(c.Info, raw.Info)
	copy(c.Occ, raw.Occ)
	copy(c.Obj, raw.Obj)
	return nil
}
