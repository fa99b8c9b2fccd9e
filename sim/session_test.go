package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/paddleball/sim"
)

func TestNewSessionLayout(t *testing.T) {
	session := sim.NewSession()
	snap := session.Snapshot()

	require.Len(t, snap.Paddles, 2)
	assert.Nil(t, snap.Ball)
	assert.Equal(t, sim.SpawnCounting, snap.Spawn.Phase)
	assert.Equal(t, sim.SpawnDelay, snap.Spawn.Remaining)

	byside := map[sim.Side]sim.PaddleState{}
	for _, p := range snap.Paddles {
		byside[p.Side] = p
	}
	require.Contains(t, byside, sim.SideLeft)
	require.Contains(t, byside, sim.SideRight)

	left := byside[sim.SideLeft]
	assert.Equal(t, sim.PaddleWidth/2, left.X)
	assert.Equal(t, sim.ArenaHeight/2, left.Y)
	assert.Equal(t, sim.PaddleWidth, left.Width)
	assert.Equal(t, sim.PaddleHeight, left.Height)

	right := byside[sim.SideRight]
	assert.Equal(t, sim.ArenaWidth-sim.PaddleWidth/2, right.X)
	assert.Equal(t, sim.ArenaHeight/2, right.Y)
}

func TestSnapshotSharesNoState(t *testing.T) {
	session := sim.NewSession()
	session.Tick(3.0)

	snap := session.Snapshot()
	require.NotNil(t, snap.Ball)

	// Mutating the snapshot must not leak back into the session.
	snap.Ball.X = -1000
	snap.Paddles[0].Y = -1000

	fresh := session.Snapshot()
	assert.Equal(t, sim.ArenaWidth/2, fresh.Ball.X)
	assert.Equal(t, sim.ArenaHeight/2, fresh.Paddles[0].Y)
}

func TestGoalDeliveredThroughCallbackAndReturn(t *testing.T) {
	session := sim.NewSession()

	var fromCallback []sim.GoalEvent
	session.OnGoal(func(ev sim.GoalEvent) {
		fromCallback = append(fromCallback, ev)
	})

	session.Tick(3.0)
	setBallState(t, session, sim.Position{X: 0.5, Y: 50}, -45, 0)

	events := session.Tick(0.1)
	require.Len(t, events, 1)
	assert.Equal(t, sim.SideRight, events[0].Winner)
	assert.Equal(t, events, fromCallback)

	// A quiet tick delivers nothing.
	assert.Empty(t, session.Tick(0.016))
	assert.Len(t, fromCallback, 1)
}

func TestGoalEventsNotRedelivered(t *testing.T) {
	session := sim.NewSession()

	session.Tick(3.0)
	setBallState(t, session, sim.Position{X: 99.5, Y: 50}, 200, 0)
	events := session.Tick(0.1)
	require.Len(t, events, 1)
	assert.Equal(t, sim.SideLeft, events[0].Winner)

	for i := 0; i < 10; i++ {
		assert.Empty(t, session.Tick(0.016))
	}
}

func TestSetAxisClampsInput(t *testing.T) {
	session := sim.NewSession()

	before := paddleY(t, session, sim.SideLeft)
	session.SetAxis(sim.SideLeft, 1e9)
	session.Tick(0.1)

	assert.InDelta(t, float64(before+sim.PaddleSpeed*0.1), float64(paddleY(t, session, sim.SideLeft)), 1e-3)
}

func TestSessionsAreIndependent(t *testing.T) {
	a := sim.NewSession()
	b := sim.NewSession()

	a.SetAxis(sim.SideLeft, 1)
	a.Tick(0.1)
	b.Tick(0.1)

	assert.Greater(t, paddleY(t, a, sim.SideLeft), sim.ArenaHeight/2)
	assert.Equal(t, sim.ArenaHeight/2, paddleY(t, b, sim.SideLeft))
}

func TestStatsCoverAllSystems(t *testing.T) {
	session := sim.NewSession()
	session.Tick(0.016)

	stats := session.Stats()
	require.NotNil(t, stats)
	assert.Len(t, stats.Systems, 4)
}
