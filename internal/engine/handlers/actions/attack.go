package actions

import (
	"errors"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/api"
)

// HandleAttack — удар по соседнему монстру.
func HandleAttack(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	l := ctx.Level
	h, m, err := monsterByID(l, p.TargetID)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	// Бить можно только соседа.
	if domain.Distance(l.Player.Pos, m.Pos) > 1 {
		return handlers.EmptyResult(), errors.New("that monster is not adjacent")
	}

	systems.PlayerAttack(l, h)
	return handlers.Result{TookTurn: true, MsgType: handlers.MsgCombat}, nil
}
