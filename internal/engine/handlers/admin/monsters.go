package admin

import (
	"ocean-server/internal/engine/handlers"
	"ocean-server/pkg/api"
)

// HandleMonsters включает или выключает всех морских монстров разом ("безопасная зона").
// payload: { "active": false }
func HandleMonsters(ctx handlers.Context, p api.MonstersPayload) (handlers.Result, error) {
	active := *p.Active
	ctx.Game.SetMonstersActive(active)

	msg := "Sea monsters surfaced"
	if !active {
		msg = "Sea monsters submerged"
	}
	return handlers.Result{Msg: msg, MsgType: "INFO", Applied: true}, nil
}
