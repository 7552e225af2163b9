package engine

import (
	"strconv"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/api"
)

// Цвета клеток для отладочных клиентов.
const (
	colorFloor = "#333333"
	colorWall  = "#666666"
	colorDoor  = "#C08040"
	colorStair = "#FFFFFF"
	colorTrap  = "#C00000"
	colorVein  = "#808080"
	colorGold  = "#FFFF00"
)

// BuildState создает снимок уровня глазами игрока: только
// запомненные клетки и видимые монстры.
func (i *Instance) BuildState() *api.ServerResponse {
	l := i.Level
	c := l.Cave

	var tiles []api.TileView
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			pt := gruid.Point{X: x, Y: y}
			visible := c.Has(pt, domain.InfoView)
			if !visible && !c.Has(pt, domain.InfoMark) {
				continue
			}
			f := c.Feat(pt)
			tiles = append(tiles, api.TileView{
				X: x, Y: y,
				Symbol:     string(f.Rune()),
				Color:      featColor(f),
				IsWall:     !f.Passable(),
				IsVisible:  visible,
				IsExplored: true,
			})
		}
	}

	var monsters []api.MonsterView
	for _, h := range l.Monsters.Handles() {
		m := l.Monster(h)
		if !m.Visible {
			continue
		}
		r := l.RaceOf(m)
		monsters = append(monsters, api.MonsterView{
			ID:     handleID(h),
			Name:   r.Name,
			Symbol: string(r.Char()),
			Color:  r.Glyph.HexColor(),
			Pos:    api.Pos{X: m.Pos.X, Y: m.Pos.Y},
			HP:     m.HP,
			MaxHP:  m.MaxHP,
			Mood:   m.Mood().String(),
			Dist:   m.Cdis,
		})
	}

	logs := make([]api.LogEntry, len(i.Logs))
	copy(logs, i.Logs)

	return &api.ServerResponse{
		Type:     api.TypeUpdate,
		Turn:     l.Turn,
		Depth:    l.Depth,
		Grid:     &api.GridMeta{Width: c.W, Height: c.H},
		Map:      tiles,
		Player:   playerView(l.Player),
		Monsters: monsters,
		Logs:     logs,
	}
}

func playerView(p *domain.Player) *api.PlayerView {
	v := &api.PlayerView{
		Name:   p.Name,
		Pos:    api.Pos{X: p.Pos.X, Y: p.Pos.Y},
		Level:  p.Lev,
		Exp:    p.Exp,
		HP:     p.Chp,
		MaxHP:  p.Mhp,
		AC:     p.AC(),
		Gold:   p.Gold,
		Energy: p.Energy,
		IsDead: p.IsDead,
	}
	for t := domain.TmdNone + 1; t < domain.TmdMax; t++ {
		if p.Is(t) {
			v.Effects = append(v.Effects, t.String())
		}
	}
	for _, slot := range p.PackSlots() {
		v.Inventory = append(v.Inventory, itemView(p, slot))
	}
	for slot := domain.InvenWield; slot < domain.InvenTotal; slot++ {
		if !p.Inven[slot].IsEmpty() {
			v.Equipment = append(v.Equipment, itemView(p, slot))
		}
	}
	return v
}

func itemView(p *domain.Player, slot int) api.ItemView {
	o := &p.Inven[slot]
	return api.ItemView{
		Slot:     slot,
		Label:    string(rune('a' + slot%26)),
		Name:     o.Desc(),
		Category: o.Tval.Category().String(),
		Number:   o.Number,
	}
}

func featColor(f domain.Feature) string {
	switch {
	case f.HasTreasure():
		return colorGold
	case f.IsVein(), f == domain.FeatRubble:
		return colorVein
	case f.IsTrap():
		return colorTrap
	case f.IsClosedDoor(), f == domain.FeatOpen, f == domain.FeatBroken:
		return colorDoor
	case f == domain.FeatLess, f == domain.FeatMore:
		return colorStair
	case !f.Passable():
		return colorWall
	}
	return colorFloor
}

// handleID — ссылка на монстра в виде, который принимают ATTACK и AIM.
func handleID(h types.Handle) string { return strconv.FormatUint(uint64(h), 10) }
