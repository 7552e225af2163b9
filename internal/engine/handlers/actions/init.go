package actions

import (
	"fmt"

	"github.com/angband/angband-sub026/internal/engine/handlers"
)

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: ArrivalMsg(ctx.Level.Depth), MsgType: handlers.MsgSystem}, nil
}

// ArrivalMsg — приветствие при входе на уровень.
func ArrivalMsg(depth int) string {
	if depth == 0 {
		return "You are in the town."
	}
	return fmt.Sprintf("You enter a maze of down staircases (%d ft).", depth*50)
}
