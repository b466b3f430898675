package engine

import (
	"fmt"

	"ocean-server/internal/domain"
	"ocean-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PlayReplay строит сервис с сидом из записи и заново применяет все команды.
// Так как вся случайность идет из генератора сессии, итог совпадает с оригиналом.
func PlayReplay(cfg Config, rs domain.ReplaySession) (*GameService, error) {
	cfg.Seed = rs.Seed

	svc, err := NewGameService(cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	for i, a := range rs.Actions {
		if _, _, err := svc.Execute(domain.Command{Action: a.Action, Payload: a.Payload}); err != nil {
			return nil, fmt.Errorf("replay action %d (%s): %w", i, a.Action, err)
		}
	}

	snap := svc.Snapshot()
	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      rs.Seed,
		"actions":   len(rs.Actions),
		"turn":      snap.Turn,
		"game_over": snap.Status.GameOver,
	}).Info(snap.Status.Message)

	return svc, nil
}
