package ocean

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocean-server/internal/domain"
	"ocean-server/internal/systems"
)

func TestNewPirate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	at := domain.Position{X: 4, Y: 2}

	tests := []struct {
		kind     PirateKind
		strategy string
	}{
		{PiratePatrol, systems.StrategyPatrol},
		{PirateChaser, systems.StrategyChase},
		{PiratePredictiveChaser, systems.StrategyPredictiveChase},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p, err := NewPirate(tt.kind, "pirate_1", at, rng)
			require.NoError(t, err)
			assert.Equal(t, domain.KindPirate, p.Kind)
			assert.Equal(t, string(tt.kind), p.Class)
			assert.Equal(t, tt.strategy, p.StrategyName())
			assert.Equal(t, at, p.Pos)
			assert.True(t, p.Active)

			if tracker, ok := p.Strategy.(domain.TargetTracker); ok {
				assert.Nil(t, tracker.Target(), "chasers start without a target")
			}
		})
	}
}

func TestNewPirate_UnknownKind(t *testing.T) {
	_, err := NewPirate("KRAKEN", "pirate_9", domain.Position{}, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrUnknownPirateKind)
}

func TestParsePirateKind(t *testing.T) {
	k, err := ParsePirateKind(" predictive_chaser ")
	require.NoError(t, err)
	assert.Equal(t, PiratePredictiveChaser, k)

	_, err = ParsePirateKind("GHOST")
	assert.ErrorIs(t, err, ErrUnknownPirateKind)
}

func TestNewMonster(t *testing.T) {
	m := NewMonster("monster_1", domain.Position{X: 1, Y: 1}, rand.New(rand.NewSource(1)))
	assert.Equal(t, domain.KindSeaMonster, m.Kind)
	assert.Equal(t, systems.StrategyPatrol, m.StrategyName())
	assert.True(t, m.Active)
}

func TestParseRoster(t *testing.T) {
	tests := []struct {
		in       string
		expected []PirateKind
		wantErr  bool
	}{
		{"PATROL,PREDICTIVE_CHASER", []PirateKind{PiratePatrol, PiratePredictiveChaser}, false},
		{" chaser , patrol ", []PirateKind{PirateChaser, PiratePatrol}, false},
		{"", []PirateKind{}, false},
		{"PATROL,KRAKEN", nil, true},
		{"PATROL,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRoster(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPirateKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
