package actions

import "ocean-server/internal/engine/handlers"

// HandleInit ничего не меняет: клиент просто получает текущее состояние
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "Client synced", MsgType: "INFO"}, nil
}
