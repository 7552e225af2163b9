package project

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
)

// floorCtx — состояние одного вызова обработчика рельефа.
type floorCtx struct {
	l       *domain.Level
	who     domain.Source
	r       int
	p       gruid.Point
	dam     int
	typ     domain.Element
	obvious bool
}

type floorHandler func(*floorCtx)

var floorHandlers = map[domain.Element]floorHandler{
	domain.GFLightWeak: floorLight,
	domain.GFLight:     floorLight,
	domain.GFDarkWeak:  floorDark,
	domain.GFDark:      floorDark,
	domain.GFKillTrap:  floorKillTrap,
	domain.GFKillDoor:  floorKillDoor,
	domain.GFKillWall:  floorKillWall,
	domain.GFMakeWall:  floorMakeWall,
	domain.GFMakeDoor:  floorMakeDoor,
	domain.GFMakeTrap:  floorMakeTrap,
}

// seenByPlayer — клетка в поле зрения игрока.
func (fc *floorCtx) seenByPlayer() bool {
	return systems.PlayerHasLos(fc.l, fc.p)
}

func (fc *floorCtx) marked() bool {
	return fc.l.Cave.Has(fc.p, domain.InfoMark)
}

// forget — игрок больше не помнит клетку, обзор надо пересчитать.
func (fc *floorCtx) forget() {
	fc.l.Cave.ClearInfo(fc.p, domain.InfoMark)
	fc.l.Update |= domain.UpdView | domain.UpdMonsters
}

// Уничтожение ловушек: тайные двери открываются глазу, замки отпираются.
func floorKillTrap(fc *floorCtx) {
	c := fc.l.Cave
	f := c.Feat(fc.p)
	switch {
	case f == domain.FeatSecret:
		c.SetFeat(fc.p, domain.FeatDoorHead)
		if fc.seenByPlayer() {
			fc.obvious = true
			fc.l.Update |= domain.UpdView
		}
	case f.IsTrap() || f == domain.FeatInvis:
		if fc.seenByPlayer() {
			fc.l.Msg("There is a bright flash of light!")
			fc.obvious = true
		}
		fc.l.Cave.ClearInfo(fc.p, domain.InfoMark)
		c.SetFeat(fc.p, domain.FeatFloor)
	case f.IsClosedDoor() && f.LockPower() > 0:
		c.SetFeat(fc.p, domain.FeatDoorHead)
		if fc.seenByPlayer() {
			fc.l.Msg("Click!")
			fc.obvious = true
		}
	}
}

// Уничтожение дверей (и ловушек заодно).
func floorKillDoor(fc *floorCtx) {
	c := fc.l.Cave
	f := c.Feat(fc.p)
	if !f.IsDoor() && !f.IsTrap() && f != domain.FeatInvis {
		return
	}
	if fc.seenByPlayer() {
		fc.l.Msg("There is a bright flash of light!")
		fc.obvious = true
		if f.IsDoor() {
			fc.l.Update |= domain.UpdView | domain.UpdMonsters
		}
	}
	c.ClearInfo(fc.p, domain.InfoMark)
	c.SetFeat(fc.p, domain.FeatFloor)
}

// Камень в грязь.
func floorKillWall(fc *floorCtx) {
	l, c := fc.l, fc.l.Cave
	f := c.Feat(fc.p)
	if f.Passable() || f.IsPermanent() {
		return
	}
	marked := fc.marked()

	switch {
	case f.IsGranite() || f == domain.FeatSecret:
		if marked {
			l.Msg("The wall turns into mud!")
			fc.obvious = true
		}
		c.SetFeat(fc.p, domain.FeatFloor)
	case f.HasTreasure():
		if marked {
			l.Msg("The vein turns into mud!")
			l.Msg("You have found something!")
			fc.obvious = true
		}
		c.SetFeat(fc.p, domain.FeatFloor)
		systems.PlaceGold(l, fc.p, l.Depth)
	case f.IsVein():
		if marked {
			l.Msg("The vein turns into mud!")
			fc.obvious = true
		}
		c.SetFeat(fc.p, domain.FeatFloor)
	case f == domain.FeatRubble:
		if marked {
			l.Msg("The rubble turns into mud!")
			fc.obvious = true
		}
		c.SetFeat(fc.p, domain.FeatFloor)
		if l.RNG.Int0(100) < 10 {
			if fc.seenByPlayer() {
				l.Msg("There was something buried in the rubble!")
				fc.obvious = true
			}
			systems.PlaceObject(l, fc.p, l.Depth, false, false)
		}
	case f.IsClosedDoor():
		if marked {
			l.Msg("The door turns into mud!")
			fc.obvious = true
		}
		c.SetFeat(fc.p, domain.FeatFloor)
	default:
		return
	}

	fc.forget()
	l.Update |= domain.UpdFlow
}

// Новая стена в пустой клетке.
func floorMakeWall(fc *floorCtx) {
	c := fc.l.Cave
	if !c.Naked(fc.p) {
		return
	}
	c.SetFeat(fc.p, domain.FeatWallExtra)
	if fc.marked() || fc.seenByPlayer() {
		fc.obvious = true
	}
	fc.l.Update |= domain.UpdView | domain.UpdMonsters | domain.UpdFlow
}

// Новая дверь: нужна клетка пола без существ. Предметы отодвигаются.
func floorMakeDoor(fc *floorCtx) {
	l, c := fc.l, fc.l.Cave
	if !c.At(fc.p).IsEmpty() || c.Feat(fc.p) != domain.FeatFloor {
		return
	}
	c.SetFeat(fc.p, domain.FeatDoorHead)
	pushObjects(l, fc.p)
	if fc.marked() {
		fc.obvious = true
	}
	l.Update |= domain.UpdView | domain.UpdMonsters | domain.UpdFlow
}

// Новая ловушка в пустой клетке без рун.
func floorMakeTrap(fc *floorCtx) {
	if systems.PlaceTrap(fc.l, fc.p) && fc.seenByPlayer() {
		fc.obvious = true
	}
}

// Свет зажигает клетку.
func floorLight(fc *floorCtx) {
	fc.l.Cave.SetInfo(fc.p, domain.InfoGlow)
	if fc.seenByPlayer() {
		if !fc.l.Player.Blind() {
			fc.obvious = true
		}
		fc.l.Update |= domain.UpdView | domain.UpdMonsters
	}
}

// Тьма гасит клетку; скучные клетки забываются.
func floorDark(fc *floorCtx) {
	c := fc.l.Cave
	c.ClearInfo(fc.p, domain.InfoGlow)
	if c.Feat(fc.p).Boring() {
		c.ClearInfo(fc.p, domain.InfoMark)
	}
	if fc.seenByPlayer() {
		fc.obvious = true
		fc.l.Update |= domain.UpdView | domain.UpdMonsters
	}
}

// pushObjects перекладывает стопку из p в соседние клетки.
// Клетка p к этому моменту уже непроходима.
func pushObjects(l *domain.Level, p gruid.Point) {
	for _, h := range l.Pile(p) {
		o := l.Object(h)
		if o == nil {
			continue
		}
		obj := *o
		l.DeleteObject(h)
		systems.DropNear(l, obj, p)
	}
}

// projectF применяет проекцию к рельефу клетки. Возвращает, заметил ли игрок.
func projectF(l *domain.Level, who domain.Source, r int, p gruid.Point, dam int, typ domain.Element) bool {
	h, ok := floorHandlers[typ]
	if !ok {
		return false
	}
	fc := floorCtx{l: l, who: who, r: r, p: p, dam: dam, typ: typ}
	h(&fc)
	return fc.obvious
}
