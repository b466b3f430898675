package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ocean-server/internal/engine"
	"ocean-server/internal/version"
	"ocean-server/pkg/api"
	"ocean-server/pkg/logger"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *engine.GameService
	Port   string

	router *way.Router
}

func New(engine *engine.GameService, port string) *Server {
	s := &Server{
		Engine: engine,
		Port:   port,
		router: way.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.handle("GET", "/state", s.handleState)
	s.handle("POST", "/action/move", s.handleMove)
	s.handle("POST", "/action/restart", s.handleRestart)
	s.handle("POST", "/action/monsters", s.handleMonsters)

	s.handle("GET", "/ws", s.handleWS)
	s.handle("GET", "/health", s.handleHealth)
	s.handle("GET", "/version", s.handleVersion)

	// Debug Routes
	debugHandler := NewDebugHandler(s.Engine)
	debugHandler.RegisterRoutes(s.router)
}

// handle регистрирует маршрут вместе с CORS preflight
func (s *Server) handle(method, pattern string, h http.HandlerFunc) {
	s.router.HandleFunc(method, pattern, enableCORS(h))
	s.router.HandleFunc(http.MethodOptions, pattern, enableCORS(handlePreflight))
}

// Handler - корневой обработчик (для httptest и внешнего http.Server)
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run запускает HTTP сервер и останавливает его при отмене ctx
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("🧭 Ocean Server running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Log.Info("HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.Snapshot().ToResponse())
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var p api.MovePayload
	if !decodeValid(w, r, &p) {
		return
	}

	snap, applied := s.Engine.ProcessMove(p.Direction)
	logger.Log.WithFields(logrus.Fields{
		"component": "http",
		"direction": p.Direction,
		"applied":   applied,
	}).Debug("Move request")

	writeJSON(w, snap.ToResponse())
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Engine.Restart()
	if err != nil {
		logger.Log.WithField("component", "http").WithError(err).Error("Restart failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, snap.ToResponse())
}

func (s *Server) handleMonsters(w http.ResponseWriter, r *http.Request) {
	var p api.MonstersPayload
	if !decodeValid(w, r, &p) {
		return
	}
	writeJSON(w, s.Engine.SetMonstersActive(*p.Active).ToResponse())
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Info())
}

// decodeValid разбирает тело запроса и прогоняет api.Validator. При ошибке уже ответил 400.
func decodeValid(w http.ResponseWriter, r *http.Request, dst api.Validator) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	if err := dst.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: err.Error()})
}
