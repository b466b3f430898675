package domain

import "fmt"

// Position - координата клетки на карте. Значимый тип, сравнивается через ==.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением (текущая не меняется)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step возвращает соседнюю клетку в направлении d.
// Для DirectionNone возвращается та же позиция.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Shift(dx, dy)
}

// Wrap заворачивает координаты на тор размером width x height.
// Работает и для отрицательных значений: -1 превращается в width-1.
func (p Position) Wrap(width, height int) Position {
	return Position{X: wrapAxis(p.X, width), Y: wrapAxis(p.Y, height)}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}

func wrapAxis(v, size int) int {
	return ((v % size) + size) % size
}
