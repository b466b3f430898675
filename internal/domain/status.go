package domain

import "fmt"

// GameStatus - итог последнего хода. Заменяется целиком, по месту не правится.
type GameStatus struct {
	GameOver bool   `json:"gameOver"`
	Message  string `json:"message"`
}

// Сообщения статуса
const (
	MsgGameReady     = "Game ready. Use controls to move Columbus."
	MsgCaughtPirate  = "Caught by a pirate! Game Over."
	MsgCaughtMonster = "Caught by a Sea Monster! Game Over."
)

func ReadyStatus() GameStatus {
	return GameStatus{Message: MsgGameReady}
}

func WinStatus(treasure Position) GameStatus {
	return GameStatus{
		GameOver: true,
		Message:  fmt.Sprintf("Columbus found the treasure at [%d,%d]! You Win!", treasure.X, treasure.Y),
	}
}

func PositionStatus(p Position) GameStatus {
	return GameStatus{Message: fmt.Sprintf("Columbus at [%d,%d]", p.X, p.Y)}
}
