package engine

import (
	"math/rand"

	"ocean-server/internal/domain"
	"ocean-server/internal/systems"
	"ocean-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Session - одна партия: карта, корабли и статус.
// Не потокобезопасна, всю синхронизацию делает GameService.
type Session struct {
	ID    string
	World *domain.World

	Player   *domain.Player
	Pirates  []*domain.Adversary
	Monsters []*domain.Adversary

	// MonsterZone - группа всех монстров для пакетного включения/выключения
	MonsterZone *domain.FeatureGroup

	Status domain.GameStatus
	Turn   int

	rng *rand.Rand
}

// adversaryMove - вычисленный, но еще не примененный ход противника
type adversaryMove struct {
	adv *domain.Adversary
	res systems.MoveResult
}

// processMove выполняет один ход. Возвращает false, если ход проигнорирован
// (игра окончена или направление неизвестно).
func (s *Session) processMove(dir domain.Direction) bool {
	// 1. Игра окончена
	if s.Status.GameOver {
		s.log().Warn("Move ignored, game over")
		return false
	}
	if dir == domain.DirectionNone {
		return false
	}

	// 2. Ход игрока
	res := systems.ResolveMove(s.World, s.Player.Pos, s.Player.Pos.Step(dir))
	s.Player.Pos = res.Pos
	if res.Moved {
		s.Player.Publish()
	}

	// 3. Ходы противников
	s.moveAdversaries()

	// 4. Проверка столкновений и итог
	s.Status = s.evaluate()
	s.Turn++

	s.log().WithFields(logrus.Fields{
		"direction": dir.String(),
		"player":    s.Player.Pos.String(),
		"game_over": s.Status.GameOver,
	}).Info(s.Status.Message)

	return true
}

// moveAdversaries в два прохода: сначала все считают ход от одного и того же
// состояния, затем позиции применяются разом.
func (s *Session) moveAdversaries() {
	planned := make([]adversaryMove, 0, len(s.Pirates)+len(s.Monsters))

	for _, a := range s.adversaries() {
		if !a.Active {
			continue
		}
		candidate := a.Strategy.Next(a.Pos)
		planned = append(planned, adversaryMove{
			adv: a,
			res: systems.ResolveMove(s.World, a.Pos, candidate),
		})
	}

	for _, m := range planned {
		m.adv.Pos = m.res.Pos

		// Переключение срабатывает только при заходе на клетку, стояние на ней не считается
		if !m.res.Switch || !m.res.Moved {
			continue
		}
		next, switched := systems.SwitchStrategy(m.adv.Strategy)
		if !switched {
			continue
		}
		s.log().WithFields(logrus.Fields{
			"adversary": m.adv.ID,
			"from":      m.adv.StrategyName(),
			"to":        next.Name(),
			"at":        m.adv.Pos.String(),
		}).Debug("Strategy switched")
		m.adv.Strategy = next
	}
}

// evaluate: пират, затем активный монстр, затем сокровище. Первое совпадение побеждает.
func (s *Session) evaluate() domain.GameStatus {
	at := s.Player.Pos

	for _, p := range s.Pirates {
		if p.Pos == at {
			return domain.GameStatus{GameOver: true, Message: domain.MsgCaughtPirate}
		}
	}
	for _, m := range s.Monsters {
		if m.Active && m.Pos == at {
			return domain.GameStatus{GameOver: true, Message: domain.MsgCaughtMonster}
		}
	}
	if at == s.World.Treasure() {
		return domain.WinStatus(at)
	}
	return domain.PositionStatus(at)
}

// setMonstersActive включает или выключает всю группу монстров
func (s *Session) setMonstersActive(active bool) {
	if active {
		s.MonsterZone.Activate()
	} else {
		s.MonsterZone.Deactivate()
	}
	s.log().WithFields(logrus.Fields{
		"group":  s.MonsterZone.Name,
		"active": active,
	}).Info("Monster group toggled")
}

// adversaries - пираты, затем монстры (порядок обхода фиксирован)
func (s *Session) adversaries() []*domain.Adversary {
	all := make([]*domain.Adversary, 0, len(s.Pirates)+len(s.Monsters))
	all = append(all, s.Pirates...)
	return append(all, s.Monsters...)
}

func (s *Session) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   s.ID,
		"turn":      s.Turn,
	})
}
