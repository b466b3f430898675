package domain

import "strings"

// Direction - одно из четырех направлений хода. DirectionNone означает "нет хода"
// (неизвестная команда или отсутствие истории у стратегии).
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Маппинг для конвертации JSON -> Domain
var directionStringToDir = map[string]Direction{
	"UP":    DirectionUp,
	"DOWN":  DirectionDown,
	"LEFT":  DirectionLeft,
	"RIGHT": DirectionRight,
}

var directionToString = map[Direction]string{
	DirectionUp:    "UP",
	DirectionDown:  "DOWN",
	DirectionLeft:  "LEFT",
	DirectionRight: "RIGHT",
}

// ParseDirection конвертирует токен клиента в Direction.
// Регистр и пробелы по краям игнорируются, всё остальное дает DirectionNone.
func ParseDirection(s string) Direction {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := directionStringToDir[upper]; ok {
		return val
	}
	return DirectionNone
}

func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "NONE"
}

// Delta возвращает единичное смещение. Ось Y направлена вниз: UP уменьшает Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// DirectionOf определяет основное направление вектора (dx, dy).
// При |dx| >= |dy| побеждает горизонталь. Нулевой вектор дает DirectionNone.
func DirectionOf(dx, dy int) Direction {
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		if dx < 0 {
			return DirectionLeft
		}
	}
	if dy > 0 {
		return DirectionDown
	}
	if dy < 0 {
		return DirectionUp
	}
	return DirectionNone
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
