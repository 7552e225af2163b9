// Package fixture собирает маленькие уровни для тестов ядра.
package fixture

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/utils"
)

// Race — раса с разумными значениями по умолчанию.
func Race(name string, char byte, level int, flags ...domain.RaceFlag) domain.Race {
	return domain.Race{
		Name:   name,
		Glyph:  types.GlyphFromLetter('w', char),
		Level:  level,
		Rarity: 1,
		Speed:  domain.NormalSpeed,
		HP:     domain.RandomValue{Base: 50},
		AC:     20,
		Sleep:  0,
		Aaf:    20,
		Mexp:   10 + level,
		Flags:  domain.FlagsOf(flags...),
		Blows:  []domain.Blow{{Method: domain.BlowHit, Effect: domain.BlowEffHurt, DD: 1, DS: 4}},
	}
}

// Kinds — небольшой справочник предметов: по одному на каждую уязвимость.
func Kinds() []domain.ObjectKind {
	ks := []domain.ObjectKind{
		{},
		{Name: "Scroll of Light", Tval: domain.TvScroll, Sval: 1},
		{Name: "Potion of Cure Light Wounds", Tval: domain.TvPotion, Sval: 1},
		{Name: "Flask~ of oil", Tval: domain.TvFlask, Sval: 0},
		{Name: "Cloak", Tval: domain.TvCloak, Sval: 1, AC: 1},
		{Name: "Dagger", Tval: domain.TvSword, Sval: 1, DD: 1, DS: 4},
		{Name: "Ring of Protection", Tval: domain.TvRing, Sval: 1},
		{Name: "Wand of Magic Missile", Tval: domain.TvWand, Sval: 1, Pval: 10},
		{Name: "Soft Leather Armour", Tval: domain.TvSoftArmor, Sval: 1, AC: 8},
		{Name: "Copper", Tval: domain.TvGold, Sval: 1, Pval: 10},
	}
	for i := range ks {
		ks[i].Index = i
		ks[i].Level = 1
	}
	return ks
}

// Registry нумерует расы с единицы и добавляет стандартные предметы.
func Registry(races ...domain.Race) *domain.Registry {
	reg := &domain.Registry{Races: make([]domain.Race, 1, len(races)+1), Kinds: Kinds()}
	for i, r := range races {
		r.Index = i + 1
		reg.Races = append(reg.Races, r)
	}
	return reg
}

// Room — уровень w×h: освещенная комната, обнесенная постоянной стеной.
func Room(w, h int, seed int64, reg *domain.Registry) *domain.Level {
	l := domain.NewLevel(1, w, h, reg, utils.NewRNG(seed))
	c := l.Cave
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := gruid.Point{X: x, Y: y}
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				c.SetFeat(p, domain.FeatPermSolid)
				continue
			}
			c.SetFeat(p, domain.FeatFloor)
			c.SetInfo(p, domain.InfoRoom|domain.InfoGlow)
		}
	}
	l.Opts.HitpointWarn = 0
	return l
}

// Player ставит персонажа уровня 10 в клетку at.
func Player(l *domain.Level, at gruid.Point) *domain.Player {
	p := domain.NewPlayer("Tester", 10)
	l.PlacePlayer(p, at)
	return p
}

// Messages — накопитель игровых сообщений.
type Messages struct {
	Lines []string
}

func (m *Messages) Msg(text string) { m.Lines = append(m.Lines, text) }

// Count — сколько раз встретилось сообщение.
func (m *Messages) Count(text string) int {
	n := 0
	for _, s := range m.Lines {
		if s == text {
			n++
		}
	}
	return n
}

// Capture подключает накопитель к уровню.
func Capture(l *domain.Level) *Messages {
	m := &Messages{}
	l.Msgs = m
	return m
}

// Obj кладет на пол предмет вида idx из стандартного справочника.
func Obj(l *domain.Level, idx int, p gruid.Point) types.Handle {
	return l.DropObject(domain.NewObject(l.Reg.Kind(idx), 1), p)
}
