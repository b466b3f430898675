package systems

import "ocean-server/internal/domain"

// SwitchStrategy возвращает стратегию после попадания на клетку смены.
// Chase <-> PredictiveChase, цель переносится, история всегда сбрасывается.
// Для остальных стратегий возвращается исходная и false.
func SwitchStrategy(s domain.MovementStrategy) (domain.MovementStrategy, bool) {
	switch cur := s.(type) {
	case *Chase:
		return NewPredictiveChase(cur.target), true
	case *PredictiveChase:
		return NewChase(cur.target), true
	}
	return s, false
}
