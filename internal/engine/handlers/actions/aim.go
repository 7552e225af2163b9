package actions

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/data"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/internal/systems/project"
	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
)

// Флаги выстрелов игрока.
var (
	boltFlags = domain.FlagsOf(domain.PFStop, domain.PFKill)
	beamFlags = domain.FlagsOf(domain.PFBeam, domain.PFKill)
	ballFlags = domain.FlagsOf(domain.PFStop, domain.PFGrid, domain.PFItem, domain.PFKill)
)

// aimTarget — точка прицела: монстр, клетка или ближайший монстр.
func aimTarget(l *domain.Level, p api.AimPayload) (gruid.Point, error) {
	switch {
	case p.TargetID != "":
		h, _, err := monsterByID(l, p.TargetID)
		if err != nil {
			return gruid.Point{}, err
		}
		v := systems.ValidateTarget(l, h)
		if !v.Valid {
			return gruid.Point{}, errors.New(v.Message)
		}
		return v.Pos, nil
	case p.Target != nil:
		at := gruid.Point{X: p.Target.X, Y: p.Target.Y}
		if !l.Cave.InBounds(at) {
			return at, fmt.Errorf("target %v is off the map", at)
		}
		return at, nil
	}
	h, ok := systems.TargetNearest(l)
	if !ok {
		return gruid.Point{}, ErrNoTarget
	}
	return l.Monster(h).Pos, nil
}

// HandleAim — выстрел стихией из жезла: болт, луч или шар.
func HandleAim(ctx handlers.Context, p api.AimPayload) (handlers.Result, error) {
	l := ctx.Level
	typ, ok := domain.ParseElement(p.Element)
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("unknown element %q", p.Element)
	}
	dice, err := data.ParseDice(p.Dice)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	if l.Player.Confused() {
		return handlers.EmptyResult(), errors.New("you are too confused")
	}
	at, err := aimTarget(l, p)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	flg, shape := boltFlags, "bolt"
	switch {
	case p.Beam:
		flg, shape = beamFlags, "beam"
	case p.Radius > 0:
		flg, shape = ballFlags, "ball"
	}
	dam := dice.Roll(l.RNG)
	name := strings.ToLower(strings.ReplaceAll(typ.String(), "_", " "))
	l.Msg("You fire a %s of %s.", shape, name)

	notice := project.Project(l, domain.FromPlayer(), p.Radius, at, dam, typ, flg)
	logger.Log.WithFields(logrus.Fields{
		"component": "aim",
		"element":   typ.String(),
		"shape":     shape,
		"target":    at,
		"dam":       dam,
		"notice":    notice,
	}).Debug("player aimed")

	return handlers.Result{TookTurn: true, MsgType: handlers.MsgCombat}, nil
}
