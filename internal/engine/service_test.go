package engine

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocean-server/internal/domain"
	"ocean-server/pkg/api"
	"ocean-server/pkg/ocean"
)

func seededConfig(seed int64) Config {
	cfg := NewConfig()
	cfg.Seed = seed
	return cfg
}

func TestNewGameService_DefaultRoster(t *testing.T) {
	svc, err := NewGameService(seededConfig(42))
	require.NoError(t, err)

	snap := svc.Snapshot()
	assert.Equal(t, 20, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.Len(t, snap.Islands, 5)
	assert.Len(t, snap.Switches, 3)
	assert.Equal(t, pos(0, 0), snap.Player)
	assert.Equal(t, 0, snap.Turn)
	assert.False(t, snap.Status.GameOver)
	assert.Equal(t, domain.MsgGameReady, snap.Status.Message)
	assert.NotEmpty(t, snap.SessionID)

	require.Len(t, snap.Pirates, 2)
	assert.Equal(t, string(ocean.PiratePatrol), snap.Pirates[0].Kind)
	assert.Equal(t, string(ocean.PiratePredictiveChaser), snap.Pirates[1].Kind)
	assert.Len(t, snap.Monsters, 4)

	occupied := map[domain.Position]bool{snap.Player: true}
	for _, p := range snap.Pirates {
		assert.False(t, occupied[p.Pos], "adversaries must not share a spawn cell")
		occupied[p.Pos] = true
	}
	for _, m := range snap.Monsters {
		assert.False(t, occupied[m], "adversaries must not share a spawn cell")
		occupied[m] = true
	}

	// Подписаны только пираты
	assert.Equal(t, 2, svc.DebugState().Subscribers)
}

func TestNewGameService_CustomRoster(t *testing.T) {
	roster, err := ocean.ParseRoster("chaser,chaser,patrol")
	require.NoError(t, err)

	cfg := seededConfig(7)
	cfg.Pirates = roster
	cfg.Monsters = 0
	svc, err := NewGameService(cfg)
	require.NoError(t, err)

	snap := svc.Snapshot()
	require.Len(t, snap.Pirates, 3)
	assert.Equal(t, string(ocean.PirateChaser), snap.Pirates[0].Kind)
	assert.Equal(t, string(ocean.PirateChaser), snap.Pirates[1].Kind)
	assert.Equal(t, string(ocean.PiratePatrol), snap.Pirates[2].Kind)
	assert.Empty(t, snap.Monsters)
	assert.Equal(t, 3, svc.DebugState().Subscribers)
}

func TestNewGameService_Errors(t *testing.T) {
	cfg := Config{Seed: 1, Width: 2, Height: 2, Islands: 1, Switches: 1, Monsters: 3}
	_, err := NewGameService(cfg)
	assert.ErrorIs(t, err, ocean.ErrWorldTooDense)

	cfg = seededConfig(1)
	cfg.Pirates = []ocean.PirateKind{"KRAKEN"}
	_, err = NewGameService(cfg)
	assert.ErrorIs(t, err, ocean.ErrUnknownPirateKind)

	cfg = seededConfig(1)
	cfg.Width = 0
	_, err = NewGameService(cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
}

func TestProcessMove_InvalidTokens(t *testing.T) {
	svc, err := NewGameService(seededConfig(5))
	require.NoError(t, err)
	before := svc.Snapshot()

	for _, dir := range []string{"NORTH", "", "diagonal"} {
		snap, applied := svc.ProcessMove(dir)
		assert.False(t, applied, "direction %q", dir)
		assert.Equal(t, before.Player, snap.Player)
		assert.Equal(t, 0, snap.Turn)
	}
	assert.Empty(t, svc.ReplaySession().Actions)
}

func TestProcessMove_CaseInsensitive(t *testing.T) {
	svc, err := NewGameService(seededConfig(5))
	require.NoError(t, err)

	snap, applied := svc.ProcessMove("up")
	assert.True(t, applied)
	assert.Equal(t, 1, snap.Turn)
}

func TestService_TerminalPriority(t *testing.T) {
	p := pirate("pirate_1", pos(4, 5), fixedStrategy{to: pos(4, 4)})
	svc := newTestService(seededConfig(1), newTestSession(t, pos(4, 3), []*domain.Adversary{p}, nil))

	snap, applied := svc.ProcessMove("DOWN")
	require.True(t, applied)
	assert.True(t, snap.Status.GameOver)
	assert.Equal(t, domain.MsgCaughtPirate, snap.Status.Message)

	// Игра окончена: ход игнорируется, но рестарт разрешен
	snap, applied = svc.ProcessMove("UP")
	assert.False(t, applied)
	assert.Equal(t, pos(4, 4), snap.Player)
	assert.Len(t, svc.ReplaySession().Actions, 1)

	snap, err := svc.Restart()
	require.NoError(t, err)
	assert.False(t, snap.Status.GameOver)
	assert.Equal(t, domain.MsgGameReady, snap.Status.Message)
}

func TestRestart_ResetsHistory(t *testing.T) {
	svc, err := NewGameService(seededConfig(11))
	require.NoError(t, err)
	first := svc.Snapshot().SessionID

	for _, dir := range []string{"RIGHT", "RIGHT", "RIGHT", "DOWN"} {
		svc.ProcessMove(dir)
	}

	snap, err := svc.Restart()
	require.NoError(t, err)

	assert.Equal(t, pos(0, 0), snap.Player)
	assert.False(t, snap.Status.GameOver)
	assert.Equal(t, 0, snap.Turn)
	assert.NotEqual(t, first, snap.SessionID)

	var predictive *AdversaryDebug
	debug := svc.DebugState()
	for i := range debug.Adversaries {
		if debug.Adversaries[i].Class == string(ocean.PiratePredictiveChaser) {
			predictive = &debug.Adversaries[i]
		}
	}
	require.NotNil(t, predictive)
	assert.Nil(t, predictive.Target)
	assert.Equal(t, "NONE", predictive.LastDirection)
	assert.Equal(t, "NONE", predictive.SecondLastDirection)
	assert.False(t, predictive.ConsecutiveMove)

	// Подписчики новой сессии: ровно пираты, без хвостов от старой
	assert.Equal(t, 2, debug.Subscribers)
}

func TestRestart_FailureKeepsSession(t *testing.T) {
	cfg := seededConfig(1)
	cfg.Width = 0
	svc := newTestService(cfg, newTestSession(t, pos(1, 1), nil, nil))

	_, err := svc.Restart()
	require.ErrorIs(t, err, domain.ErrInvalidDimensions)

	snap := svc.Snapshot()
	assert.Equal(t, "test-session", snap.SessionID)
	assert.Equal(t, pos(1, 1), snap.Player)
	assert.Empty(t, svc.ReplaySession().Actions)
}

func TestSetMonstersActive(t *testing.T) {
	svc, err := NewGameService(seededConfig(3))
	require.NoError(t, err)

	snap := svc.SetMonstersActive(false)
	assert.Empty(t, snap.Monsters)

	snap = svc.SetMonstersActive(true)
	assert.Len(t, snap.Monsters, 4)

	actions := svc.ReplaySession().Actions
	require.Len(t, actions, 2)
	assert.Equal(t, domain.ActionMonsters, actions[0].Action)
}

func TestProcessCommand(t *testing.T) {
	svc, err := NewGameService(seededConfig(3))
	require.NoError(t, err)

	_, _, err = svc.ProcessCommand(api.ClientCommand{Action: "ATTACK"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, _, err = svc.ProcessCommand(api.ClientCommand{Action: "MOVE", Payload: json.RawMessage(`{"direction":`)})
	assert.Error(t, err)

	_, _, err = svc.ProcessCommand(api.ClientCommand{Action: "MONSTERS", Payload: json.RawMessage(`{}`)})
	assert.Error(t, err, "active flag is required")

	_, result, err := svc.ProcessCommand(api.ClientCommand{Action: "INIT"})
	require.NoError(t, err)
	assert.False(t, result.Applied)

	snap, result, err := svc.ProcessCommand(api.ClientCommand{Action: "move", Payload: json.RawMessage(`{"direction":"LEFT"}`)})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, 1, snap.Turn)
}

func TestExecute_BroadcastsAppliedCommands(t *testing.T) {
	svc, err := NewGameService(seededConfig(9))
	require.NoError(t, err)
	updates := svc.Hub.Register("watcher")

	svc.ProcessMove("NORTH")
	svc.ProcessMove("DOWN")

	select {
	case msg := <-updates:
		assert.Equal(t, 1, msg.Turn)
	case <-time.After(time.Second):
		t.Fatal("no broadcast after applied move")
	}
	assert.Len(t, updates, 0, "ignored move must not be broadcast")
}

func TestPlayReplay_Deterministic(t *testing.T) {
	cfg := seededConfig(2024)
	svc, err := NewGameService(cfg)
	require.NoError(t, err)

	script := []string{"RIGHT", "DOWN", "DOWN", "LEFT", "UP", "RIGHT", "RIGHT", "DOWN"}
	for _, dir := range script {
		svc.ProcessMove(dir)
	}
	svc.SetMonstersActive(false)
	_, err = svc.Restart()
	require.NoError(t, err)
	for _, dir := range script {
		svc.ProcessMove(dir)
	}

	replayed, err := PlayReplay(NewConfig(), svc.ReplaySession())
	require.NoError(t, err)

	want := svc.Snapshot().ToResponse()
	got := replayed.Snapshot().ToResponse()
	want.SessionID, got.SessionID = "", ""
	assert.Equal(t, want, got)
	assert.Equal(t, len(svc.ReplaySession().Actions), len(replayed.ReplaySession().Actions))
}

func TestExecute_BroadcastOrderFollowsTurns(t *testing.T) {
	// Без противников и вдали от сокровища игра не заканчивается
	svc := newTestService(seededConfig(1), newTestSession(t, pos(0, 0), nil, nil))
	updates := svc.Hub.Register("watcher")

	const workers, rounds = 5, 5
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				svc.ProcessMove("LEFT")
				svc.ProcessMove("RIGHT")
			}
		}()
	}
	wg.Wait()

	total := workers * rounds * 2
	require.Len(t, updates, total)
	prev := 0
	for i := 0; i < total; i++ {
		msg := <-updates
		assert.Equal(t, prev+1, msg.Turn, "snapshots must arrive in turn order")
		prev = msg.Turn
	}
}
