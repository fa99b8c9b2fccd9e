package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plus3/paddleball/ecs"
	"github.com/plus3/paddleball/sim"
)

// setBallState repositions the session's ball and overrides its velocity.
func setBallState(t *testing.T, session *sim.Session, pos sim.Position, vx, vy float32) {
	t.Helper()

	view := ecs.NewView[struct {
		*sim.Ball
		*sim.Position
	}](session.Storage())

	found := false
	for item := range view.Iter() {
		item.Ball.VelocityX = vx
		item.Ball.VelocityY = vy
		*item.Position = pos
		found = true
	}
	require.True(t, found, "no ball in session")
}

// ballCount reports how many ball entities currently exist.
func ballCount(session *sim.Session) int {
	view := ecs.NewView[struct {
		*sim.Ball
	}](session.Storage())
	return view.Count()
}

// paddleY returns the vertical center of one side's paddle.
func paddleY(t *testing.T, session *sim.Session, side sim.Side) float32 {
	t.Helper()

	for _, paddle := range session.Snapshot().Paddles {
		if paddle.Side == side {
			return paddle.Y
		}
	}
	t.Fatalf("no %s paddle in session", side)
	return 0
}
