package domain

import "encoding/json"

// Command - команда для движка в разобранном виде.
// Payload парсится хендлером конкретного ActionType.
type Command struct {
	Action  ActionType
	Payload json.RawMessage
}
