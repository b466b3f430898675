package utils

import (
	"github.com/google/uuid"
)

// GenerateID создает уникальный ID для сессий и подключений
func GenerateID() string {
	return uuid.NewString()
}

// ShortID - первые 8 символов ID, для логов
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
