package domain

import "encoding/json"

// ReplayAction - запись одной примененной команды
type ReplayAction struct {
	Turn    int             `json:"turn"`    // Номер хода сессии на момент команды
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись партии. По Seed и списку команд партия
// воспроизводится детерминированно.
type ReplaySession struct {
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
