package engine

import (
	"time"

	"ocean-server/internal/domain"
	"ocean-server/pkg/ocean"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно сессии. Генерация карты, расстановка и патрули
	// берут случайность только отсюда, поэтому партия повторяется по Seed + командам.
	Seed int64

	Width    int
	Height   int
	Islands  int
	Switches int
	Start    domain.Position

	// Состав противников
	Pirates  []ocean.PirateKind
	Monsters int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:     time.Now().UnixNano(),
		Width:    ocean.MapWidth,
		Height:   ocean.MapHeight,
		Islands:  ocean.IslandCount,
		Switches: ocean.SwitcherCount,
		Start:    domain.Position{X: 0, Y: 0},
		Pirates:  []ocean.PirateKind{ocean.PiratePatrol, ocean.PiratePredictiveChaser},
		Monsters: 4,
	}
}

// Params - параметры генератора карты
func (c Config) Params() ocean.Params {
	return ocean.Params{
		Width:    c.Width,
		Height:   c.Height,
		Islands:  c.Islands,
		Switches: c.Switches,
		Start:    c.Start,
	}
}
