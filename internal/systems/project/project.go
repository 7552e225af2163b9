package project

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/logger"
)

// Этапы разрешения проекции. Пишутся в лог поля "stage".
const (
	StageGrid    = "grid"
	StageItem    = "item"
	StageMonster = "monster"
	StagePlayer  = "player"
)

// source — клетка, из которой летит проекция.
func source(l *domain.Level, who domain.Source, target gruid.Point, flg domain.FlagSet[domain.ProjectFlag]) gruid.Point {
	switch {
	case flg.Has(domain.PFJump):
		return target
	case who.IsPlayer() && l.Player != nil:
		return l.Player.Pos
	case who.IsMonster():
		if m := l.Monster(who.Mon); m != nil {
			return m.Pos
		}
	}
	return target
}

// Path — клетки полета до точки взрыва. Луч включает стартовую клетку.
// Шар (rad > 0) взрывается перед стеной, болт может закончиться в ней.
func Path(l *domain.Level, who domain.Source, rad int, target gruid.Point, flg domain.FlagSet[domain.ProjectFlag]) (beam []gruid.Point, center gruid.Point) {
	start := source(l, who, target, flg)
	if start == target {
		flg.Clear(domain.PFThru)
	}
	center = start
	if flg.Has(domain.PFBeam) {
		beam = append(beam, start)
	}
	for _, p := range systems.ProjectPath(l.Cave, domain.MaxRange, start, target, flg) {
		if rad > 0 && !l.Cave.Floor(p) {
			break
		}
		center = p
		if flg.Has(domain.PFBeam) {
			beam = append(beam, p)
		}
	}
	return beam, center
}

// Project запускает проекцию типа typ от who в target.
// Порядок строгий: сначала рельеф всех клеток, потом предметы, потом
// монстры, последним игрок. Каждый проход идет от центра наружу.
// Возвращает true, если игрок что-то заметил.
func Project(l *domain.Level, who domain.Source, rad int, target gruid.Point, dam int, typ domain.Element, flg domain.FlagSet[domain.ProjectFlag]) bool {
	if !typ.Valid() {
		logger.Log.WithFields(logrus.Fields{
			"component": "project",
			"element":   int(typ),
		}).Warn("unknown damage type")
		return false
	}
	if rad < 0 {
		rad = 0
	}

	beam, center := Path(l, who, rad, target, flg)
	flg.Clear(domain.PFJump)
	blast := Explode(l.Cave, center, rad, beam)
	if blast.Len() == 0 {
		return false
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "project",
		"element":   typ,
		"center":    center,
		"rad":       rad,
		"dam":       dam,
	})
	log.WithField("grids", blast.Len()).Debug("projection exploded")

	notice := false
	if flg.Has(domain.PFGrid) {
		blast.Each(func(dist int, p gruid.Point) bool {
			log.WithFields(logrus.Fields{"stage": StageGrid, "dist": dist, "pos": p}).Debug("resolve")
			if projectF(l, who, dist, p, dam, typ) {
				notice = true
			}
			return true
		})
	}

	// Рельеф мог измениться: пересчитать обзор до предметов и существ.
	if l.Update != 0 {
		systems.HandleUpdates(l)
	}

	if flg.Has(domain.PFItem) {
		blast.Each(func(dist int, p gruid.Point) bool {
			log.WithFields(logrus.Fields{"stage": StageItem, "dist": dist, "pos": p}).Debug("resolve")
			if projectO(l, who, dist, p, dam, typ) {
				notice = true
			}
			return true
		})
	}

	if flg.Has(domain.PFKill) {
		blast.Each(func(dist int, p gruid.Point) bool {
			if _, ok := l.Cave.At(p).Monster(); !ok {
				return true
			}
			log.WithFields(logrus.Fields{"stage": StageMonster, "dist": dist, "pos": p}).Debug("resolve")
			if projectM(l, who, dist, p, dam, typ, false) {
				notice = true
			}
			return true
		})

		// Игрок задевается не больше одного раза.
		blast.Each(func(dist int, p gruid.Point) bool {
			if !l.Cave.At(p).IsPlayer() {
				return true
			}
			log.WithFields(logrus.Fields{"stage": StagePlayer, "dist": dist, "pos": p}).Debug("resolve")
			if projectP(l, who, dist, p, dam, typ) {
				notice = true
			}
			return false
		})
	}

	if l.Update != 0 {
		systems.HandleUpdates(l)
	}
	return notice
}
