package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/engine/handlers/actions"
	"github.com/angband/angband-sub026/pkg/logger"
)

// processEvent разбирает состояние игрока после команды: смерть или уход с уровня.
func (i *Instance) processEvent() domain.EventType {
	p := i.Level.Player
	switch {
	case i.Dead():
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"depth":     i.Level.Depth,
			"turn":      i.Level.Turn,
			"killer":    p.DiedFrom,
		}).Info("player died")
		i.AddLog("You die.", handlers.MsgSystem)
		return domain.EventPlayerDied
	case p.Leaving:
		i.changeLevel(p.NewDepth)
		return domain.EventNewLevel
	}
	return domain.EventNone
}

// changeLevel переносит игрока на уровень depth.
func (i *Instance) changeLevel(depth int) {
	old := i.Level
	if depth < 0 {
		depth = 0
	}
	i.enterLevel(depth, old.Player, old.Lore, old.Turn)

	i.AddLog(actions.ArrivalMsg(depth), handlers.MsgSystem)
	i.runUntilPlayer()
}
