package ocean

import (
	"errors"
	"fmt"
	"math/rand"

	"ocean-server/internal/domain"
	"ocean-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Параметры карты по умолчанию
const (
	MapWidth      = 20
	MapHeight     = 20
	IslandCount   = 5
	SwitcherCount = 3
)

// ErrWorldTooDense - запрошено больше объектов, чем свободных клеток
var ErrWorldTooDense = errors.New("not enough free cells")

// Params - что и сколько разместить на карте
type Params struct {
	Width    int
	Height   int
	Islands  int
	Switches int
	Start    domain.Position
}

// DefaultParams - стандартный океан 20x20 со стартом в (0,0)
func DefaultParams() Params {
	return Params{
		Width:    MapWidth,
		Height:   MapHeight,
		Islands:  IslandCount,
		Switches: SwitcherCount,
	}
}

// Generate размещает острова, сокровище и клетки смены стратегии методом отбора:
// случайная клетка принимается, если она не занята и не является стартом.
// Вместимость проверяется заранее, поэтому цикл всегда завершается.
func Generate(rng *rand.Rand, p Params) (*domain.World, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.Islands < 0 || p.Switches < 0 {
		return nil, fmt.Errorf("negative feature count: islands=%d switches=%d", p.Islands, p.Switches)
	}

	// Старт не занимается ничем, плюс одна клетка под сокровище
	capacity := p.Width*p.Height - 1
	required := p.Islands + 1 + p.Switches
	if required > capacity {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrWorldTooDense, required, capacity)
	}

	occupied := map[domain.Position]bool{p.Start: true}
	draw := func() domain.Position {
		for {
			c := domain.Position{X: rng.Intn(p.Width), Y: rng.Intn(p.Height)}
			if !occupied[c] {
				occupied[c] = true
				return c
			}
		}
	}

	// Приоритет: острова, затем сокровище, затем переключатели
	islands := make([]domain.Position, 0, p.Islands)
	for i := 0; i < p.Islands; i++ {
		islands = append(islands, draw())
	}
	treasure := draw()
	switches := make([]domain.Position, 0, p.Switches)
	for i := 0; i < p.Switches; i++ {
		switches = append(switches, draw())
	}

	w, err := domain.NewWorld(p.Width, p.Height, p.Start, islands, treasure, switches)
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "ocean_generator",
		"size":      fmt.Sprintf("%dx%d", p.Width, p.Height),
		"islands":   len(islands),
		"switches":  len(switches),
		"treasure":  treasure.String(),
	}).Debug("Ocean generated")

	return w, nil
}
