package actions

import (
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/api"
)

// HandleMove — шаг, удар по монстру или попытка открыть дверь.
// Шаг в знакомую стену хода не тратит.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.MovePlayer(ctx.Level, systems.DirOf(p.Dx, p.Dy))
	if !res.Attacked.IsNil() {
		return handlers.Result{TookTurn: true, MsgType: handlers.MsgCombat}, nil
	}
	return handlers.Result{TookTurn: res.TookTurn}, nil
}

// HandleTunnel — копать завал, жилу или стену по направлению.
func HandleTunnel(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	_, took := systems.Tunnel(ctx.Level, systems.DirOf(p.Dx, p.Dy))
	return handlers.Result{TookTurn: took}, nil
}
