package domain

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/core/types/enums"
	"github.com/angband/angband-sub026/pkg/utils"
)

// Options — опции поведения монстров.
type Options struct {
	SmartLearn    bool `json:"smartLearn"`
	SmartCheat    bool `json:"smartCheat"`
	SmartPacks    bool `json:"smartPacks"`
	SmartMonsters bool `json:"smartMonsters"`
	FlowBySound   bool `json:"flowBySound"`
	FlowBySmell   bool `json:"flowBySmell"`
	// HitpointWarn — порог предупреждения о здоровье в десятых долях.
	HitpointWarn int `json:"hitpointWarn"`
}

// Update — что нужно пересчитать после хода.
type Update uint8

const (
	UpdView Update = 1 << iota
	UpdFlow
	UpdMonsters
	UpdDistance
)

// Registry — справочники рас и видов предметов.
type Registry struct {
	Races []Race
	Kinds []ObjectKind
}

// Race по индексу. Индекс 0 зарезервирован.
func (r *Registry) Race(idx int) *Race {
	if idx <= 0 || idx >= len(r.Races) {
		return nil
	}
	return &r.Races[idx]
}

func (r *Registry) Kind(idx int) *ObjectKind {
	if idx <= 0 || idx >= len(r.Kinds) {
		return nil
	}
	return &r.Kinds[idx]
}

// RaceByName — раса по точному имени или nil.
func (r *Registry) RaceByName(name string) *Race {
	for i := 1; i < len(r.Races); i++ {
		if r.Races[i].Name == name {
			return &r.Races[i]
		}
	}
	return nil
}

// KindByTval — первый вид с данным классом и подклассом.
func (r *Registry) KindByTval(tv Tval, sval int) *ObjectKind {
	for i := 1; i < len(r.Kinds); i++ {
		if r.Kinds[i].Tval == tv && r.Kinds[i].Sval == sval {
			return &r.Kinds[i]
		}
	}
	return nil
}

// Level — явный контекст ядра: пещера, монстры, предметы, игрок.
// Никаких глобалов: все обработчики получают *Level.
type Level struct {
	Depth int   `json:"depth"`
	Turn  int64 `json:"turn"`

	Cave     *Cave           `json:"cave"`
	Monsters *Arena[Monster] `json:"monsters"`
	Objects  *Arena[Object]  `json:"objects"`
	Player   *Player         `json:"player"`
	Lore     []Lore          `json:"lore"`

	Opts Options `json:"opts"`
	// FlowN — номер последнего обновления поля запаха.
	FlowN    uint32 `json:"flowN"`
	NumRepro int    `json:"numRepro"`

	Reg    *Registry  `json:"-"`
	RNG    *utils.RNG `json:"-"`
	Msgs   Messenger  `json:"-"`
	Update Update     `json:"-"`
	// Paths — буферы поиска в ширину для поля запаха.
	Paths *paths.PathRange `json:"-"`
}

// NewLevel создает пустой уровень, залитый гранитом.
func NewLevel(depth, w, h int, reg *Registry, rng *utils.RNG) *Level {
	l := &Level{
		Depth:    depth,
		Cave:     NewCave(w, h),
		Monsters: NewArena[Monster](enums.KindMonster, uint8(depth), MaxMonsters),
		Objects:  NewArena[Object](enums.KindObject, uint8(depth), MaxObjects),
		Reg:      reg,
		RNG:      rng,
		Msgs:     Discard,
	}
	if reg != nil {
		l.Lore = make([]Lore, len(reg.Races))
	}
	return l
}

// Msg выводит сообщение. Первая буква делается заглавной.
func (l *Level) Msg(format string, args ...any) {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	l.Msgs.Msg(Capitalize(text))
}

// Capitalize — заглавная первая буква (аналог «%^s»).
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Monster разрешает ссылку на живого монстра.
func (l *Level) Monster(h types.Handle) *Monster { return l.Monsters.Get(h) }

// Object разрешает ссылку на предмет.
func (l *Level) Object(h types.Handle) *Object { return l.Objects.Get(h) }

// RaceOf — раса монстра.
func (l *Level) RaceOf(m *Monster) *Race { return l.Reg.Race(m.Race) }

// LoreOf — знания о расе монстра.
func (l *Level) LoreOf(m *Monster) *Lore {
	if m.Race <= 0 || m.Race >= len(l.Lore) {
		return &Lore{}
	}
	return &l.Lore[m.Race]
}

// MonsterAt — монстр в клетке.
func (l *Level) MonsterAt(p gruid.Point) (types.Handle, *Monster) {
	h, ok := l.Cave.At(p).Monster()
	if !ok {
		return types.NilHandle, nil
	}
	return h, l.Monsters.Get(h)
}

// MonName — имя монстра для сообщений: «the kobold», «Grip» или «it».
func (l *Level) MonName(m *Monster) string {
	r := l.RaceOf(m)
	if r == nil {
		return "something"
	}
	if !m.Visible {
		return "it"
	}
	if r.Unique() {
		return r.Name
	}
	return "the " + r.Name
}

// PlaceMonster ставит монстра расы race в пустую клетку p.
// Возвращает NilHandle, если клетка занята или арена полна.
func (l *Level) PlaceMonster(race int, p gruid.Point, asleep bool) types.Handle {
	r := l.Reg.Race(race)
	if r == nil || !l.Cave.Empty(p) {
		return types.NilHandle
	}
	m := Monster{
		Race:  race,
		Pos:   p,
		Speed: r.Speed,
	}
	if r.Unique() {
		m.MaxHP = r.HP.Base + r.HP.Dice*r.HP.Sides
	} else {
		m.MaxHP = r.HP.Roll(l.RNG)
	}
	if m.MaxHP < 1 {
		m.MaxHP = 1
	}
	m.HP = m.MaxHP
	if asleep && r.Sleep > 0 {
		m.Sleep = r.Sleep*2 + l.RNG.Int1(r.Sleep*10)
	}
	// Разброс скорости у обычных монстров.
	if !r.Unique() {
		if i := ExtractEnergy(r.Speed) / 10; i > 0 {
			m.Speed += l.RNG.Spread(0, i)
		}
	}
	m.Energy = l.RNG.Int0(TurnEnergy)
	m.MFlags.Set(MFBorn)
	if l.Player != nil {
		m.Cdis = Distance(p, l.Player.Pos)
	}
	h := l.Monsters.Insert(m)
	if h.IsNil() {
		return h
	}
	l.Cave.SetAt(p, MonsterHere(h))
	return h
}

// DeleteMonster убирает монстра с уровня вместе с тем, что он нес.
func (l *Level) DeleteMonster(h types.Handle) {
	m := l.Monsters.Get(h)
	if m == nil {
		return
	}
	for oh := m.Held; !oh.IsNil(); {
		o := l.Objects.Get(oh)
		if o == nil {
			break
		}
		next := o.Next
		l.Objects.Remove(oh)
		oh = next
	}
	if occ, ok := l.Cave.At(m.Pos).Monster(); ok && occ == h {
		l.Cave.SetAt(m.Pos, Nobody())
	}
	l.Monsters.Remove(h)
}

// Swap меняет местами содержимое двух клеток (monster_swap).
func (l *Level) Swap(a, b gruid.Point) {
	oa, ob := l.Cave.At(a), l.Cave.At(b)
	l.Cave.SetAt(a, ob)
	l.Cave.SetAt(b, oa)
	l.relocate(ob, a)
	l.relocate(oa, b)
}

func (l *Level) relocate(o Occupant, p gruid.Point) {
	switch {
	case o.IsPlayer():
		l.Player.Pos = p
		for _, h := range l.Monsters.Handles() {
			m := l.Monsters.Get(h)
			m.Cdis = Distance(m.Pos, p)
		}
		l.Update |= UpdView | UpdFlow
	case o.Kind == OccMonster:
		if m := l.Monsters.Get(o.Mon); m != nil {
			m.Pos = p
			if l.Player != nil {
				m.Cdis = Distance(p, l.Player.Pos)
			}
		}
	}
}

// PlacePlayer ставит игрока в клетку p.
func (l *Level) PlacePlayer(p *Player, at gruid.Point) {
	l.Player = p
	p.Pos = at
	l.Cave.SetAt(at, PlayerHere())
	l.Update |= UpdView | UpdFlow
}

// Pile — ссылки на предметы стопки в клетке.
func (l *Level) Pile(p gruid.Point) []types.Handle {
	var out []types.Handle
	for h := l.Cave.ObjAt(p); !h.IsNil(); {
		o := l.Objects.Get(h)
		if o == nil {
			break
		}
		out = append(out, h)
		h = o.Next
	}
	return out
}

// DropObject кладет предмет на пол в клетку p (в голову стопки).
func (l *Level) DropObject(o Object, p gruid.Point) types.Handle {
	o.Pos = p
	o.HeldBy = types.NilHandle
	o.Next = l.Cave.ObjAt(p)
	h := l.Objects.Insert(o)
	if h.IsNil() {
		l.Msg("Too many objects!")
		return h
	}
	l.Cave.SetObjAt(p, h)
	return h
}

// DeleteObject убирает предмет из стопки на полу и освобождает слот.
func (l *Level) DeleteObject(h types.Handle) {
	o := l.Objects.Get(h)
	if o == nil {
		return
	}
	l.unlink(h, o)
	l.Objects.Remove(h)
}

// unlink вынимает предмет из стопки владельца (пол или монстр).
func (l *Level) unlink(h types.Handle, o *Object) {
	var head *types.Handle
	if m := l.Monsters.Get(o.HeldBy); m != nil {
		head = &m.Held
	} else if l.Cave.InBounds(o.Pos) {
		head = &l.Cave.Obj[o.Pos.Y*l.Cave.W+o.Pos.X]
	} else {
		return
	}
	for cur := head; !cur.IsNil(); {
		if *cur == h {
			*cur = o.Next
			break
		}
		c := l.Objects.Get(*cur)
		if c == nil {
			break
		}
		cur = &c.Next
	}
	o.Next = types.NilHandle
}

// GiveToMonster перекладывает предмет с пола в ношу монстра.
func (l *Level) GiveToMonster(h types.Handle, mh types.Handle) {
	o := l.Objects.Get(h)
	m := l.Monsters.Get(mh)
	if o == nil || m == nil {
		return
	}
	l.unlink(h, o)
	o.HeldBy = mh
	o.Next = m.Held
	m.Held = h
}

// Distance — угловое расстояние Angband: длинная ось плюс половина короткой.
func Distance(a, b gruid.Point) int {
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	if dy > dx {
		return dy + (dx >> 1)
	}
	return dx + (dy >> 1)
}
