package server

import (
	"net/http"
	_ "net/http/pprof" // Profiling

	"ocean-server/internal/engine"

	"github.com/matryer/way"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(router *way.Router) {
	router.HandleFunc("GET", "/debug/session", enableCORS(h.handleSession))
	// pprof регистрируется в DefaultServeMux, просто пробрасываем туда
	router.Handle("GET", "/debug/pprof/...", http.DefaultServeMux)
}

// /debug/session - снимок, сид, подписчики и память стратегий каждого противника
func (h *DebugHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.DebugState())
}
