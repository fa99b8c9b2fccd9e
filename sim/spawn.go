package sim

import "github.com/plus3/paddleball/ecs"

// SpawnSystem drives the ball spawn state machine: it counts down the spawn
// delay, creates the ball at the arena center when the delay elapses, and
// re-arms the countdown once the ball has been destroyed.
type SpawnSystem struct {
	Balls ecs.Query[struct {
		*Ball
	}]
	Clock ecs.Singleton[SpawnClock]
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()

	hasBall := s.Balls.Count() > 0

	// Transitions are sequential guards so a destroyed ball re-arms the
	// countdown within a single tick (ready -> idle -> counting).
	if clock.Phase == SpawnReady && !hasBall {
		clock.Phase = SpawnIdle
	}

	if clock.Phase == SpawnIdle && !hasBall {
		clock.Phase = SpawnCounting
		clock.Remaining = SpawnDelay
		return
	}

	if clock.Phase == SpawnCounting {
		clock.Remaining -= float32(frame.DeltaTime)
		if clock.Remaining <= 0 {
			// Underflow is absorbed: the ball spawns this tick regardless
			// of how far past zero the countdown went.
			clock.Phase = SpawnReady
			clock.Remaining = 0
			frame.Commands.Spawn(
				Ball{
					VelocityX: BallVelocityX,
					VelocityY: BallVelocityY,
					Radius:    BallRadius,
				},
				Position{X: ArenaWidth / 2, Y: ArenaHeight / 2},
			)
		}
	}
}
