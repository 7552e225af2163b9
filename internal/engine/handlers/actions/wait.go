package actions

import (
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/pkg/api"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.TurnResult(), nil
}

// HandleRest — отдых на несколько ходов или до полного здоровья.
// Прерывается, если показался монстр.
func HandleRest(ctx handlers.Context, p api.RestPayload) (handlers.Result, error) {
	pl := ctx.Level.Player
	if p.Turns == 0 && pl.Chp >= pl.Mhp {
		return handlers.Result{Msg: "You have no need to rest.", MsgType: handlers.MsgInfo}, nil
	}
	n := p.Turns
	if n == 0 {
		n = api.MaxRestTurns
	}
	return handlers.Result{TookTurn: true, Repeat: n - 1, UntilHealed: p.Turns == 0}, nil
}
