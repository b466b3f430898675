package domain

// MovementStrategy вычисляет желаемую клетку из текущей.
// Заворачивание по краям и проверка островов делаются вызывающей стороной.
type MovementStrategy interface {
	Next(current Position) Position
	Name() string
}

// TargetTracker реализуют стратегии, которым нужна позиция цели.
// nil сбрасывает цель и всю накопленную историю.
type TargetTracker interface {
	SetTarget(target *Position)
	Target() *Position
}
