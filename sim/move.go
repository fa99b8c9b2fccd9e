package sim

import "github.com/plus3/paddleball/ecs"

// MoveBallsSystem integrates ball position from velocity and elapsed time.
// Pure integration with no clamping; it runs before BounceSystem so
// collisions are tested against the post-move position. Collision detection
// is discrete, so tunnelling at extreme speed or frame time is accepted.
type MoveBallsSystem struct {
	Balls ecs.Query[struct {
		*Ball
		*Position
	}]
}

func (s *MoveBallsSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)

	for ball := range s.Balls.Iter() {
		ball.Position.X += ball.Ball.VelocityX * dt
		ball.Position.Y += ball.Ball.VelocityY * dt
	}
}
