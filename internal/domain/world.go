package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("world dimensions must be positive")
	ErrOutOfBounds       = errors.New("position is out of bounds")
	ErrPlacementConflict = errors.New("feature placement conflict")
)

// Cell - флаги одной клетки. Сокровище хранится отдельно, на уровне World.
type Cell struct {
	IsIsland         bool `json:"isIsland"`
	IsStrategySwitch bool `json:"isStrategySwitch"`
}

// World - океан одной игровой сессии.
// После NewWorld не меняется, поэтому его можно читать из нескольких горутин без блокировок.
type World struct {
	Width  int
	Height int

	cells    [][]Cell // [y][x]
	treasure Position
	islands  []Position
	switches []Position
}

// NewWorld собирает мир и проверяет инварианты размещения:
// острова, сокровище и клетки смены стратегии не пересекаются между собой
// и не занимают стартовую клетку игрока.
func NewWorld(width, height int, start Position, islands []Position, treasure Position, switches []Position) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	w := &World{
		Width:    width,
		Height:   height,
		cells:    make([][]Cell, height),
		treasure: treasure,
		islands:  make([]Position, 0, len(islands)),
		switches: make([]Position, 0, len(switches)),
	}
	for y := 0; y < height; y++ {
		w.cells[y] = make([]Cell, width)
	}

	if !w.InBounds(start) {
		return nil, fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}

	for _, p := range islands {
		if !w.InBounds(p) {
			return nil, fmt.Errorf("island %v: %w", p, ErrOutOfBounds)
		}
		if p == start || w.cells[p.Y][p.X].IsIsland {
			return nil, fmt.Errorf("island %v: %w", p, ErrPlacementConflict)
		}
		w.cells[p.Y][p.X].IsIsland = true
		w.islands = append(w.islands, p)
	}

	if !w.InBounds(treasure) {
		return nil, fmt.Errorf("treasure %v: %w", treasure, ErrOutOfBounds)
	}
	if treasure == start || w.IsIsland(treasure) {
		return nil, fmt.Errorf("treasure %v: %w", treasure, ErrPlacementConflict)
	}

	for _, p := range switches {
		if !w.InBounds(p) {
			return nil, fmt.Errorf("switch %v: %w", p, ErrOutOfBounds)
		}
		cell := &w.cells[p.Y][p.X]
		if p == start || p == treasure || cell.IsIsland || cell.IsStrategySwitch {
			return nil, fmt.Errorf("switch %v: %w", p, ErrPlacementConflict)
		}
		cell.IsStrategySwitch = true
		w.switches = append(w.switches, p)
	}

	return w, nil
}

func (w *World) InBounds(p Position) bool {
	return p.X >= 0 && p.X < w.Width && p.Y >= 0 && p.Y < w.Height
}

// Wrap заворачивает позицию на тор этого мира
func (w *World) Wrap(p Position) Position {
	return p.Wrap(w.Width, w.Height)
}

// CellAt возвращает клетку; за пределами карты - пустую клетку и false
func (w *World) CellAt(p Position) (Cell, bool) {
	if !w.InBounds(p) {
		return Cell{}, false
	}
	return w.cells[p.Y][p.X], true
}

// IsIsland - за пределами карты острова нет
func (w *World) IsIsland(p Position) bool {
	c, _ := w.CellAt(p)
	return c.IsIsland
}

func (w *World) IsStrategySwitch(p Position) bool {
	c, _ := w.CellAt(p)
	return c.IsStrategySwitch
}

func (w *World) Treasure() Position {
	return w.treasure
}

// Islands возвращает копию списка островов
func (w *World) Islands() []Position {
	out := make([]Position, len(w.islands))
	copy(out, w.islands)
	return out
}

// Switches возвращает копию списка клеток смены стратегии
func (w *World) Switches() []Position {
	out := make([]Position, len(w.switches))
	copy(out, w.switches)
	return out
}

// FreeCells - количество клеток, доступных для кораблей и монстров
// (не острова и не стартовая клетка игрока).
func (w *World) FreeCells() int {
	return w.Width*w.Height - len(w.islands) - 1
}
