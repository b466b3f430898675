package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocean-server/internal/domain"
	"ocean-server/internal/systems"
)

func TestProcessMove_PirateBeatsTreasure(t *testing.T) {
	// Игрок заходит на сокровище, пират в тот же ход заходит туда же
	p := pirate("pirate_1", pos(4, 5), fixedStrategy{to: pos(4, 4)})
	s := newTestSession(t, pos(4, 3), []*domain.Adversary{p}, nil)

	require.True(t, s.processMove(domain.DirectionDown))

	assert.True(t, s.Status.GameOver)
	assert.Equal(t, domain.MsgCaughtPirate, s.Status.Message)
}

func TestProcessMove_MonsterBeatsTreasure(t *testing.T) {
	m := monster("monster_1", pos(4, 4), fixedStrategy{to: pos(4, 4)})
	s := newTestSession(t, pos(4, 3), nil, []*domain.Adversary{m})

	require.True(t, s.processMove(domain.DirectionDown))

	assert.True(t, s.Status.GameOver)
	assert.Equal(t, domain.MsgCaughtMonster, s.Status.Message)
}

func TestProcessMove_InactiveMonsterIgnored(t *testing.T) {
	m := monster("monster_1", pos(2, 1), fixedStrategy{to: pos(0, 5)})
	s := newTestSession(t, pos(1, 1), nil, []*domain.Adversary{m})
	s.setMonstersActive(false)

	require.True(t, s.processMove(domain.DirectionRight))

	assert.False(t, s.Status.GameOver)
	assert.Equal(t, "Columbus at [2,1]", s.Status.Message)
	assert.Equal(t, pos(2, 1), m.Pos, "inactive monster must not move")

	s.setMonstersActive(true)
	require.True(t, s.processMove(domain.DirectionLeft))
	assert.Equal(t, pos(0, 5), m.Pos)
}

func TestProcessMove_WinThenIgnored(t *testing.T) {
	s := newTestSession(t, pos(3, 4), nil, nil)

	require.True(t, s.processMove(domain.DirectionRight))
	assert.True(t, s.Status.GameOver)
	assert.Equal(t, "Columbus found the treasure at [4,4]! You Win!", s.Status.Message)
	assert.Equal(t, 1, s.Turn)

	assert.False(t, s.processMove(domain.DirectionLeft))
	assert.Equal(t, pos(4, 4), s.Player.Pos)
	assert.Equal(t, 1, s.Turn)
}

func TestProcessMove_PublishUpdatesChaser(t *testing.T) {
	chase := systems.NewChase(nil)
	p := pirate("pirate_1", pos(1, 4), chase)
	s := newTestSession(t, pos(0, 0), []*domain.Adversary{p}, nil)

	require.True(t, s.processMove(domain.DirectionRight))

	require.NotNil(t, chase.Target())
	assert.Equal(t, pos(1, 0), *chase.Target())
	assert.Equal(t, pos(1, 3), p.Pos)
	assert.Equal(t, "Columbus at [1,0]", s.Status.Message)
}

func TestProcessMove_IslandBlocksWithoutPublish(t *testing.T) {
	chase := systems.NewChase(nil)
	p := pirate("pirate_1", pos(0, 5), chase)
	s := newTestSession(t, pos(2, 1), []*domain.Adversary{p}, nil)

	require.True(t, s.processMove(domain.DirectionRight))

	assert.Equal(t, pos(2, 1), s.Player.Pos)
	assert.Nil(t, chase.Target(), "blocked move must not notify")
	assert.Equal(t, 1, s.Turn)
}

func TestProcessMove_WrapsAroundEdge(t *testing.T) {
	s := newTestSession(t, pos(0, 0), nil, nil)

	require.True(t, s.processMove(domain.DirectionLeft))
	assert.Equal(t, pos(5, 0), s.Player.Pos)

	require.True(t, s.processMove(domain.DirectionUp))
	assert.Equal(t, pos(5, 5), s.Player.Pos)
}

func TestProcessMove_InvalidDirectionIsNoop(t *testing.T) {
	p := pirate("pirate_1", pos(2, 2), fixedStrategy{to: pos(2, 3)})
	s := newTestSession(t, pos(0, 0), []*domain.Adversary{p}, nil)

	assert.False(t, s.processMove(domain.DirectionNone))
	assert.Equal(t, pos(0, 0), s.Player.Pos)
	assert.Equal(t, pos(2, 2), p.Pos)
	assert.Equal(t, 0, s.Turn)
	assert.Equal(t, domain.MsgGameReady, s.Status.Message)
}

func TestProcessMove_SwitchCellSwapsStrategy(t *testing.T) {
	chase := systems.NewChase(nil)
	p := pirate("pirate_1", pos(5, 1), chase)
	s := newTestSession(t, pos(5, 5), []*domain.Adversary{p}, nil)

	// Игрок уходит на (5,4), пират идет вниз и попадает на переключатель (5,2)
	require.True(t, s.processMove(domain.DirectionUp))

	assert.Equal(t, pos(5, 2), p.Pos)
	pc, ok := p.Strategy.(*systems.PredictiveChase)
	require.True(t, ok, "expected PredictiveChase, got %T", p.Strategy)
	require.NotNil(t, pc.Target())
	assert.Equal(t, pos(5, 4), *pc.Target())

	// Подписка осталась на противнике, а не на стратегии: новая стратегия получает цель
	require.True(t, s.processMove(domain.DirectionDown))
	require.NotNil(t, pc.Target())
	assert.Equal(t, pos(5, 5), *pc.Target())
}

func TestProcessMove_StandingOnSwitchDoesNotRetrigger(t *testing.T) {
	target := pos(5, 2)
	chase := systems.NewChase(&target)
	p := pirate("pirate_1", pos(5, 2), chase)
	s := newTestSession(t, pos(2, 1), []*domain.Adversary{p}, nil)

	// Игрок упирается в остров, цель пирата не меняется, он стоит на переключателе
	require.True(t, s.processMove(domain.DirectionRight))

	assert.Equal(t, pos(5, 2), p.Pos)
	assert.Equal(t, systems.StrategyChase, p.StrategyName())
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	m := monster("monster_1", pos(1, 5), fixedStrategy{to: pos(1, 5)})
	p := pirate("pirate_1", pos(2, 5), fixedStrategy{to: pos(2, 5)})
	s := newTestSession(t, pos(0, 0), []*domain.Adversary{p}, []*domain.Adversary{m})

	snap := s.snapshot()
	require.Len(t, snap.Islands, 1)
	require.Len(t, snap.Pirates, 1)
	require.Len(t, snap.Monsters, 1)

	snap.Islands[0] = pos(0, 0)
	snap.Pirates[0].Pos = pos(0, 0)

	again := s.snapshot()
	assert.Equal(t, pos(3, 1), again.Islands[0])
	assert.Equal(t, pos(2, 5), again.Pirates[0].Pos)
	assert.Equal(t, "CHASER", again.Pirates[0].Kind)
}

func TestSnapshot_ToResponse(t *testing.T) {
	m := monster("monster_1", pos(1, 5), fixedStrategy{to: pos(1, 5)})
	s := newTestSession(t, pos(0, 0), nil, []*domain.Adversary{m})

	resp := s.snapshot().ToResponse()
	assert.Equal(t, 6, resp.Map.Width)
	assert.Equal(t, 6, resp.Map.Height)
	assert.Len(t, resp.Map.Islands, 1)
	assert.Len(t, resp.Map.StrategySwitchers, 1)
	assert.Equal(t, 4, resp.Treasure.X)
	assert.NotNil(t, resp.Pirates, "empty list must encode as []")
	assert.Len(t, resp.Monsters, 1)
	assert.Equal(t, domain.MsgGameReady, resp.Status.Message)

	s.setMonstersActive(false)
	assert.Empty(t, s.snapshot().ToResponse().Monsters)
}
