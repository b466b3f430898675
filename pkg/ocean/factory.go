package ocean

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"ocean-server/internal/domain"
	"ocean-server/internal/systems"
)

// PirateKind - вид пиратского корабля, определяет стартовую стратегию
type PirateKind string

const (
	PiratePatrol           PirateKind = "PATROL"
	PirateChaser           PirateKind = "CHASER"
	PiratePredictiveChaser PirateKind = "PREDICTIVE_CHASER"
)

// ClassSeaMonster - класс морского монстра в снапшоте
const ClassSeaMonster = "SEA_MONSTER"

var ErrUnknownPirateKind = errors.New("unknown pirate kind")

// ParsePirateKind разбирает вид пирата (регистр не важен)
func ParsePirateKind(s string) (PirateKind, error) {
	switch k := PirateKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case PiratePatrol, PirateChaser, PiratePredictiveChaser:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPirateKind, s)
}

// ParseRoster разбирает состав пиратов через запятую: "PATROL,PREDICTIVE_CHASER".
// Пустая строка дает пустой состав.
func ParseRoster(s string) ([]PirateKind, error) {
	roster := make([]PirateKind, 0)
	if strings.TrimSpace(s) == "" {
		return roster, nil
	}
	for _, part := range strings.Split(s, ",") {
		kind, err := ParsePirateKind(part)
		if err != nil {
			return nil, err
		}
		roster = append(roster, kind)
	}
	return roster, nil
}

// NewPirate создает активного пирата. У преследователей цели нет до первого хода игрока.
func NewPirate(kind PirateKind, id string, pos domain.Position, rng *rand.Rand) (*domain.Adversary, error) {
	var strategy domain.MovementStrategy
	switch kind {
	case PiratePatrol:
		strategy = systems.NewPatrol(rng)
	case PirateChaser:
		strategy = systems.NewChase(nil)
	case PiratePredictiveChaser:
		strategy = systems.NewPredictiveChase(nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPirateKind, kind)
	}

	return &domain.Adversary{
		Entity:   domain.Entity{ID: id, Kind: domain.KindPirate, Pos: pos},
		Class:    string(kind),
		Strategy: strategy,
		Active:   true,
	}, nil
}

// NewMonster создает активного морского монстра с патрульной стратегией
func NewMonster(id string, pos domain.Position, rng *rand.Rand) *domain.Adversary {
	return &domain.Adversary{
		Entity:   domain.Entity{ID: id, Kind: domain.KindSeaMonster, Pos: pos},
		Class:    ClassSeaMonster,
		Strategy: systems.NewPatrol(rng),
		Active:   true,
	}
}
