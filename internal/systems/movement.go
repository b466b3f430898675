package systems

import (
	"ocean-server/internal/domain"
	"ocean-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MoveResult - результат разрешения одного хода
type MoveResult struct {
	Pos     domain.Position // Итоговая позиция (всегда в пределах карты)
	Moved   bool            // Позиция изменилась
	Blocked bool            // Уперлись в остров
	Switch  bool            // Встали на клетку смены стратегии
}

// ResolveMove применяет к кандидату тор и острова. Не меняет состояние мира!
// Остров означает "стоим на месте", других вариантов не перебираем.
func ResolveMove(w *domain.World, from, candidate domain.Position) MoveResult {
	// 1. Заворачиваем по краям
	dest := w.Wrap(candidate)

	// 2. Остров
	if w.IsIsland(dest) {
		logger.Log.WithFields(logrus.Fields{
			"component": "movement",
			"from":      from.String(),
			"to":        dest.String(),
		}).Debug("Move blocked by island")
		return MoveResult{Pos: from, Blocked: true}
	}

	// 3. Клетка смены стратегии
	return MoveResult{
		Pos:    dest,
		Moved:  dest != from,
		Switch: w.IsStrategySwitch(dest),
	}
}
