package actions

import (
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
)

// HandleDrop обрабатывает команду DROP - выброс предмета из инвентаря.
// Count == 0 — весь стак.
func HandleDrop(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	msg, err := systems.TryDrop(ctx.Level, p.Slot, p.Count)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "drop_handler",
			"slot":      p.Slot,
		}).WithError(err).Debug("drop refused")
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: msg, MsgType: handlers.MsgInfo, TookTurn: true}, nil
}

// HandleWield надевает или берет в руки предмет из рюкзака.
func HandleWield(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	msg, err := systems.TryWield(ctx.Level, p.Slot)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: msg, MsgType: handlers.MsgInfo, TookTurn: true}, nil
}
