package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// StateResponse - полный снимок партии. Отдается на каждый HTTP-запрос
// и рассылается по WebSocket после каждого изменения.
type StateResponse struct {
	// SessionID меняется при каждом рестарте
	SessionID string `json:"sessionId"`

	// Turn - сколько ходов применено в текущей партии
	Turn int `json:"turn"`

	Map      MapView      `json:"map"`
	Player   PointView    `json:"player"`
	Treasure PointView    `json:"treasure"`
	Pirates  []PirateView `json:"pirates"`

	// Monsters - только активные морские монстры
	Monsters []PointView `json:"monsters"`

	Status StatusView `json:"status"`
}

// MapView - неизменная часть карты
type MapView struct {
	Width             int         `json:"width"`
	Height            int         `json:"height"`
	Islands           []PointView `json:"islands"`
	StrategySwitchers []PointView `json:"strategySwitchers"`
}

type PointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PirateView - позиция пирата и его вид (PATROL, CHASER, PREDICTIVE_CHASER)
type PirateView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Type string `json:"type"`
}

type StatusView struct {
	IsGameOver bool   `json:"isGameOver"`
	Message    string `json:"message"`
}

// ErrorResponse - тело ответа при ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - команда по WebSocket
type ClientCommand struct {
	Action  string          `json:"action"` // MOVE, RESTART, INIT, MONSTERS
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload - тело POST /action/move и payload команды MOVE.
// Неизвестное направление не ошибка: ход просто не выполняется.
type MovePayload struct {
	Direction string `json:"direction"`
}

// MonstersPayload - тело POST /action/monsters
type MonstersPayload struct {
	Active *bool `json:"active"`
}
