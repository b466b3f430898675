package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"ocean-server/internal/domain"
	"ocean-server/internal/engine/handlers"
	"ocean-server/internal/engine/handlers/actions"
	"ocean-server/internal/engine/handlers/admin"
	"ocean-server/internal/network"
	"ocean-server/pkg/api"
	"ocean-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

var ErrUnknownAction = errors.New("unknown action")

// GameService владеет текущей партией и сериализует все команды одним мьютексом.
// Ход либо применяется целиком, либо не применяется: читатели снимков
// никогда не видят промежуточных позиций.
type GameService struct {
	mu sync.Mutex
	// bmu держит порядок рассылки: берется до освобождения mu
	bmu sync.Mutex

	cfg     Config
	rng     *rand.Rand
	session *Session
	replay  *domain.ReplaySession

	Hub *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc
}

// NewGameService строит первую партию. Ошибка генерации возвращается сразу,
// сервис в неконсистентном состоянии не создается.
func NewGameService(cfg Config) (*GameService, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	session, err := buildSession(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}

	s := &GameService{
		cfg:     cfg,
		rng:     rng,
		session: session,
		replay: &domain.ReplaySession{
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
			Actions:   make([]domain.ReplayAction, 0),
		},
		Hub:      network.NewBroadcaster(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionRestart] = handlers.WithEmptyPayload(actions.HandleRestart)
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMonsters] = handlers.WithPayload(admin.HandleMonsters)
}

// Execute выполняет команду под локом, пишет примененные команды в реплей
// и после освобождения лока рассылает новый снимок подписчикам.
// Снимки уходят в том же порядке, в каком применялись команды.
func (s *GameService) Execute(cmd domain.Command) (Snapshot, handlers.Result, error) {
	s.mu.Lock()

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		snap := s.session.snapshot()
		s.mu.Unlock()
		return snap, handlers.EmptyResult(), fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}

	turn := s.session.Turn
	ctx := handlers.Context{
		Game:      gameControl{s},
		SessionID: s.session.ID,
		Turn:      turn,
	}

	result, err := handler(ctx, cmd.Payload)
	if err == nil && result.Applied {
		s.recordAction(cmd, turn)
	}
	snap := s.session.snapshot()
	s.bmu.Lock()
	s.mu.Unlock()
	defer s.bmu.Unlock()

	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"action":    cmd.Action.String(),
		}).WithError(err).Warn("Command failed")
		return snap, result, err
	}

	s.logResult(result)

	if result.Applied {
		s.Hub.Broadcast(snap.ToResponse())
	}
	return snap, result, nil
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) (Snapshot, handlers.Result, error) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		return s.Snapshot(), handlers.EmptyResult(), fmt.Errorf("%w: %q", ErrUnknownAction, externalCmd.Action)
	}

	return s.Execute(domain.Command{
		Action:  actionType,
		Payload: externalCmd.Payload,
	})
}

// ProcessMove делает ход в направлении UP/DOWN/LEFT/RIGHT.
// false - ход не применен (неизвестное направление или игра окончена).
func (s *GameService) ProcessMove(direction string) (Snapshot, bool) {
	payload, _ := json.Marshal(api.MovePayload{Direction: direction})
	snap, result, err := s.Execute(domain.Command{Action: domain.ActionMove, Payload: payload})
	if err != nil {
		return snap, false
	}
	return snap, result.Applied
}

// Restart начинает новую партию. При ошибке остается предыдущая.
func (s *GameService) Restart() (Snapshot, error) {
	snap, _, err := s.Execute(domain.Command{Action: domain.ActionRestart})
	return snap, err
}

// SetMonstersActive включает или выключает группу морских монстров
func (s *GameService) SetMonstersActive(active bool) Snapshot {
	payload, _ := json.Marshal(api.MonstersPayload{Active: &active})
	snap, _, _ := s.Execute(domain.Command{Action: domain.ActionMonsters, Payload: payload})
	return snap
}

// Snapshot - текущее состояние без изменения партии
func (s *GameService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.snapshot()
}

// DebugState - снимок плюс внутренности стратегий
func (s *GameService) DebugState() DebugState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return DebugState{
		State:       s.session.snapshot().ToResponse(),
		Seed:        s.cfg.Seed,
		Subscribers: s.session.Player.SubscriberCount(),
		MonsterZone: s.session.MonsterZone.Name,
		Adversaries: s.session.debugAdversaries(),
		Recorded:    len(s.replay.Actions),
	}
}

// ReplaySession возвращает копию записанной ленты команд
func (s *GameService) ReplaySession() domain.ReplaySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *s.replay
	out.Actions = make([]domain.ReplayAction, len(s.replay.Actions))
	copy(out.Actions, s.replay.Actions)
	return out
}

func (s *GameService) recordAction(cmd domain.Command, turn int) {
	s.replay.Actions = append(s.replay.Actions, domain.ReplayAction{
		Turn:    turn,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

func (s *GameService) logResult(result handlers.Result) {
	if result.Msg == "" {
		return
	}
	entry := logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  result.MsgType,
	})
	if result.MsgType == "WARN" {
		entry.Warn(result.Msg)
		return
	}
	entry.Info(result.Msg)
}

// --- handlers.Game ---

// gameControl дает хендлерам доступ к партии. Методы вызываются только под s.mu.
type gameControl struct {
	s *GameService
}

func (g gameControl) Move(dir domain.Direction) bool {
	return g.s.session.processMove(dir)
}

func (g gameControl) Restart() error {
	next, err := buildSession(g.s.cfg, g.s.rng)
	if err != nil {
		return err
	}

	// Старые подписки не должны пережить рестарт
	g.s.session.Player.ClearSubscribers()
	g.s.session = next
	return nil
}

func (g gameControl) SetMonstersActive(active bool) {
	g.s.session.setMonstersActive(active)
}
