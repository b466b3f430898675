package actions

import (
	"fmt"

	"ocean-server/internal/domain"
	"ocean-server/internal/engine/handlers"
	"ocean-server/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	dir := domain.ParseDirection(p.Direction)
	if dir == domain.DirectionNone {
		// Не ошибка: просто ничего не происходит
		return handlers.Result{
			Msg:     fmt.Sprintf("Unknown direction %q, move skipped", p.Direction),
			MsgType: "WARN",
		}, nil
	}

	if !ctx.Game.Move(dir) {
		return handlers.Result{Msg: "Move ignored, game over", MsgType: "WARN"}, nil
	}

	return handlers.Result{Applied: true}, nil
}
