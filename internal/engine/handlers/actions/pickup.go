package actions

import (
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/systems"
)

// HandlePickup подбирает все, что лежит под ногами.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	l := ctx.Level
	if len(l.Pile(l.Player.Pos)) == 0 {
		return handlers.Result{Msg: "There is nothing here to pick up.", MsgType: handlers.MsgInfo}, nil
	}
	if systems.PlayerPickup(l, true) == 0 {
		return handlers.EmptyResult(), nil
	}
	return handlers.TurnResult(), nil
}
