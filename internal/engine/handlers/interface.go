package handlers

import (
	"encoding/json"

	"ocean-server/internal/domain"
)

// Game - то, что хендлер может делать с партией.
// Реализуется движком; вызывается уже под его локом.
type Game interface {
	// Move выполняет ход. false - ход проигнорирован (игра окончена).
	Move(dir domain.Direction) bool
	// Restart пересобирает партию. При ошибке текущая партия остается.
	Restart() error
	SetMonstersActive(active bool)
}

// Context передает хендлеру состояние партии
type Context struct {
	Game      Game
	SessionID string
	Turn      int
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // INFO, WARN
	Applied bool   // Состояние изменилось: команда пишется в реплей и рассылается
}

// HandlerFunc - это контракт для любой команды (MOVE, RESTART, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа
func EmptyResult() Result {
	return Result{}
}
