package engine

import (
	"ocean-server/internal/domain"
	"ocean-server/internal/systems"
	"ocean-server/pkg/api"
)

// PirateSnapshot - позиция пирата и его вид
type PirateSnapshot struct {
	Pos  domain.Position
	Kind string
}

// Snapshot - копия состояния партии на момент вызова.
// Не содержит ссылок на внутренние структуры сессии.
type Snapshot struct {
	SessionID string
	Turn      int

	Width    int
	Height   int
	Islands  []domain.Position
	Switches []domain.Position
	Treasure domain.Position

	Player   domain.Position
	Pirates  []PirateSnapshot
	Monsters []domain.Position // Только активные

	Status domain.GameStatus
}

// snapshot собирает копию. Вызывается под локом сервиса.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.ID,
		Turn:      s.Turn,
		Width:     s.World.Width,
		Height:    s.World.Height,
		Islands:   s.World.Islands(),
		Switches:  s.World.Switches(),
		Treasure:  s.World.Treasure(),
		Player:    s.Player.Pos,
		Pirates:   make([]PirateSnapshot, 0, len(s.Pirates)),
		Monsters:  make([]domain.Position, 0, len(s.Monsters)),
		Status:    s.Status,
	}

	for _, p := range s.Pirates {
		snap.Pirates = append(snap.Pirates, PirateSnapshot{Pos: p.Pos, Kind: p.Class})
	}
	for _, m := range s.Monsters {
		if m.Active {
			snap.Monsters = append(snap.Monsters, m.Pos)
		}
	}

	return snap
}

// ToResponse конвертирует снимок в DTO для клиента
func (s Snapshot) ToResponse() api.StateResponse {
	resp := api.StateResponse{
		SessionID: s.SessionID,
		Turn:      s.Turn,
		Map: api.MapView{
			Width:             s.Width,
			Height:            s.Height,
			Islands:           toPoints(s.Islands),
			StrategySwitchers: toPoints(s.Switches),
		},
		Player:   toPoint(s.Player),
		Treasure: toPoint(s.Treasure),
		Pirates:  make([]api.PirateView, 0, len(s.Pirates)),
		Monsters: toPoints(s.Monsters),
		Status: api.StatusView{
			IsGameOver: s.Status.GameOver,
			Message:    s.Status.Message,
		},
	}

	for _, p := range s.Pirates {
		resp.Pirates = append(resp.Pirates, api.PirateView{X: p.Pos.X, Y: p.Pos.Y, Type: p.Kind})
	}

	return resp
}

func toPoint(p domain.Position) api.PointView {
	return api.PointView{X: p.X, Y: p.Y}
}

func toPoints(list []domain.Position) []api.PointView {
	out := make([]api.PointView, 0, len(list))
	for _, p := range list {
		out = append(out, toPoint(p))
	}
	return out
}

// --- DEBUG ---

// AdversaryDebug - внутреннее состояние противника, включая память стратегии
type AdversaryDebug struct {
	ID       string           `json:"id"`
	Kind     string           `json:"kind"`
	Class    string           `json:"class"`
	Pos      domain.Position  `json:"pos"`
	Active   bool             `json:"active"`
	Strategy string           `json:"strategy"`
	Target   *domain.Position `json:"target,omitempty"`

	LastDirection       string `json:"lastDirection,omitempty"`
	SecondLastDirection string `json:"secondLastDirection,omitempty"`
	ConsecutiveMove     bool   `json:"consecutiveMove"`
}

// DebugState - всё, что видно в /debug/session
type DebugState struct {
	State       api.StateResponse `json:"state"`
	Seed        int64             `json:"seed"`
	Subscribers int               `json:"subscribers"`
	MonsterZone string            `json:"monsterZone"`
	Adversaries []AdversaryDebug  `json:"adversaries"`
	Recorded    int               `json:"recordedActions"`
}

func (s *Session) debugAdversaries() []AdversaryDebug {
	all := s.adversaries()
	out := make([]AdversaryDebug, 0, len(all))

	for _, a := range all {
		d := AdversaryDebug{
			ID:       a.ID,
			Kind:     string(a.Kind),
			Class:    a.Class,
			Pos:      a.Pos,
			Active:   a.Active,
			Strategy: a.StrategyName(),
		}
		if tracker, ok := a.Strategy.(domain.TargetTracker); ok {
			d.Target = tracker.Target()
		}
		if pc, ok := a.Strategy.(*systems.PredictiveChase); ok {
			last, second, consecutive := pc.History()
			d.LastDirection = last.String()
			d.SecondLastDirection = second.String()
			d.ConsecutiveMove = consecutive
		}
		out = append(out, d)
	}

	return out
}
