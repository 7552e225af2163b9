package actions

import (
	"errors"
	"fmt"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine/handlers"
)

// HandleSave пишет снимок партии. Хода не тратит.
func HandleSave(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Save == nil {
		return handlers.EmptyResult(), errors.New("saving is disabled")
	}
	path, err := ctx.Save()
	if err != nil {
		return handlers.EmptyResult(), fmt.Errorf("save failed: %w", err)
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Game saved to %s.", path),
		MsgType: handlers.MsgSystem,
		Event:   domain.EventSaved,
	}, nil
}
