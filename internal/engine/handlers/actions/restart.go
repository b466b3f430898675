package actions

import (
	"fmt"

	"ocean-server/internal/engine/handlers"
)

func HandleRestart(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Game.Restart(); err != nil {
		return handlers.EmptyResult(), fmt.Errorf("restart: %w", err)
	}
	return handlers.Result{Msg: "New game started", MsgType: "INFO", Applied: true}, nil
}
