package systems

import (
	"math/rand"

	"ocean-server/internal/domain"
)

// Имена стратегий (уходят в логи и debug-снапшот)
const (
	StrategyPatrol          = "PATROL"
	StrategyChase           = "CHASE"
	StrategyPredictiveChase = "PREDICTIVE_CHASE"
)

// ChaseStep - один шаг по одной оси в сторону цели.
// При |dx| >= |dy| идем по X, если dx != 0, иначе по Y. Совпадение позиций дает (0,0).
func ChaseStep(from, to domain.Position) (int, int) {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if abs(dx) >= abs(dy) {
		if dx != 0 {
			return sign(dx), 0
		}
		if dy != 0 {
			return 0, sign(dy)
		}
		return 0, 0
	}

	if dy != 0 {
		return 0, sign(dy)
	}
	return sign(dx), 0
}

// --- Patrol ---

// Patrol - случайное блуждание. Генератор общий для сессии, чтобы партию можно было повторить.
type Patrol struct {
	rng *rand.Rand
}

func NewPatrol(rng *rand.Rand) *Patrol {
	return &Patrol{rng: rng}
}

func (p *Patrol) Name() string { return StrategyPatrol }

// Next выбирает один из пяти равновероятных вариантов: стоять, +x, -x, +y, -y
func (p *Patrol) Next(current domain.Position) domain.Position {
	switch p.rng.Intn(5) {
	case 1:
		return current.Shift(1, 0)
	case 2:
		return current.Shift(-1, 0)
	case 3:
		return current.Shift(0, 1)
	case 4:
		return current.Shift(0, -1)
	}
	return current
}

// --- Chase ---

// Chase - жадное преследование по одной оси
type Chase struct {
	target *domain.Position
}

// NewChase копирует цель, чтобы стратегия не делила указатель с вызывающим
func NewChase(target *domain.Position) *Chase {
	c := &Chase{}
	c.SetTarget(target)
	return c
}

func (c *Chase) Name() string { return StrategyChase }

func (c *Chase) SetTarget(target *domain.Position) {
	if target == nil {
		c.target = nil
		return
	}
	t := *target
	c.target = &t
}

func (c *Chase) Target() *domain.Position {
	return copyPos(c.target)
}

// Next: без цели стоим на месте
func (c *Chase) Next(current domain.Position) domain.Position {
	if c.target == nil {
		return current
	}
	dx, dy := ChaseStep(current, *c.target)
	return current.Shift(dx, dy)
}

// --- PredictiveChase ---

// PredictiveChase - Chase плюс упреждение: если цель дважды подряд сдвинулась
// в одну сторону, добавляем шаг в эту сторону по свободной оси.
type PredictiveChase struct {
	target *domain.Position

	lastDirection       domain.Direction
	secondLastDirection domain.Direction
	consecutiveMove     bool
}

// NewPredictiveChase всегда стартует с пустой историей
func NewPredictiveChase(target *domain.Position) *PredictiveChase {
	p := &PredictiveChase{}
	if target != nil {
		t := *target
		p.target = &t
	}
	return p
}

func (p *PredictiveChase) Name() string { return StrategyPredictiveChase }

// SetTarget обновляет цель и историю направлений.
// Первая установка цели направления не дает. nil сбрасывает всё.
func (p *PredictiveChase) SetTarget(target *domain.Position) {
	if target == nil {
		p.target = nil
		p.lastDirection = domain.DirectionNone
		p.secondLastDirection = domain.DirectionNone
		p.consecutiveMove = false
		return
	}

	if p.target != nil && *p.target != *target {
		dir := domain.DirectionOf(target.X-p.target.X, target.Y-p.target.Y)
		p.secondLastDirection = p.lastDirection
		p.lastDirection = dir
		p.consecutiveMove = p.lastDirection != domain.DirectionNone &&
			p.lastDirection == p.secondLastDirection
	}

	t := *target
	p.target = &t
}

func (p *PredictiveChase) Target() *domain.Position {
	return copyPos(p.target)
}

// History - последние два направления цели и флаг повтора (для тестов и debug)
func (p *PredictiveChase) History() (last, secondLast domain.Direction, consecutive bool) {
	return p.lastDirection, p.secondLastDirection, p.consecutiveMove
}

func (p *PredictiveChase) Next(current domain.Position) domain.Position {
	if p.target == nil {
		return current
	}

	dx, dy := ChaseStep(current, *p.target)

	if p.consecutiveMove {
		px, py := p.lastDirection.Delta()
		// Стандартный шаг главнее на своей оси
		if dx == 0 {
			dx = clamp(dx + px)
		}
		if dy == 0 {
			dy = clamp(dy + py)
		}
	}

	return current.Shift(dx, dy)
}

// --- helpers ---

func copyPos(p *domain.Position) *domain.Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x int) int {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
