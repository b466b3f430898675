package engine

import (
	"fmt"
	"math/rand"

	"ocean-server/internal/domain"
	"ocean-server/pkg/ocean"
	"ocean-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Имена по умолчанию
const (
	PlayerID         = "columbus"
	MonsterGroupName = "Shallow Monsters"
)

// buildSession генерирует карту и расставляет всех участников новой партии.
// Ошибка означает, что сессия не создана вовсе.
func buildSession(cfg Config, rng *rand.Rand) (*Session, error) {
	// 1. Карта
	world, err := ocean.Generate(rng, cfg.Params())
	if err != nil {
		return nil, err
	}

	// 2. Хватит ли места для противников
	total := len(cfg.Pirates) + cfg.Monsters
	if total > world.FreeCells() {
		return nil, fmt.Errorf("%w: %d adversaries, %d free cells", ocean.ErrWorldTooDense, total, world.FreeCells())
	}

	s := &Session{
		ID:          utils.GenerateID(),
		World:       world,
		Player:      domain.NewPlayer(PlayerID, cfg.Start),
		MonsterZone: domain.NewFeatureGroup(MonsterGroupName),
		Status:      domain.ReadyStatus(),
		rng:         rng,
	}

	occupied := map[domain.Position]bool{cfg.Start: true}
	spawn := func() domain.Position {
		for {
			c := domain.Position{X: rng.Intn(world.Width), Y: rng.Intn(world.Height)}
			if !occupied[c] && !world.IsIsland(c) {
				occupied[c] = true
				return c
			}
		}
	}

	// 3. Пираты. Подписываются на игрока: преследователи получают цель, патруль игнорирует.
	for i, kind := range cfg.Pirates {
		p, err := ocean.NewPirate(kind, fmt.Sprintf("pirate_%d", i+1), spawn(), rng)
		if err != nil {
			return nil, err
		}
		s.Pirates = append(s.Pirates, p)
		s.Player.Subscribe(p)
	}

	// 4. Монстры, все в одной группе
	for i := 0; i < cfg.Monsters; i++ {
		m := ocean.NewMonster(fmt.Sprintf("monster_%d", i+1), spawn(), rng)
		s.Monsters = append(s.Monsters, m)
		s.MonsterZone.Add(m)
	}

	s.log().WithFields(logrus.Fields{
		"treasure": world.Treasure().String(),
		"pirates":  len(s.Pirates),
		"monsters": len(s.Monsters),
	}).Info("Session built")

	return s, nil
}
