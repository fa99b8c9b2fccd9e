package sim

import "github.com/plus3/paddleball/ecs"

// BounceSystem resolves ball collisions in a fixed order: top/bottom walls,
// then paddles, then the out-of-bounds check on the side edges. Reflections
// only flip a velocity component's sign, never its magnitude. A ball that
// exits through a side edge is destroyed and a GoalEvent crediting the
// opposite player is queued.
type BounceSystem struct {
	Balls ecs.Query[struct {
		ecs.EntityId
		*Ball
		*Position
	}]
	Paddles ecs.Query[struct {
		*Paddle
		*Position
	}]
	Goals ecs.Singleton[Goals]
}

func (s *BounceSystem) Execute(frame *ecs.UpdateFrame) {
	for ball := range s.Balls.Iter() {
		radius := ball.Ball.Radius

		// Walls. Reflect only when moving toward the wall; the position
		// clamp leaves the ball touching the boundary, so an unconditional
		// flip would reverse it again on the next pass.
		if ball.Position.Y-radius <= 0 && ball.Ball.VelocityY < 0 {
			ball.Ball.VelocityY = -ball.Ball.VelocityY
			ball.Position.Y = radius
		} else if ball.Position.Y+radius >= ArenaHeight && ball.Ball.VelocityY > 0 {
			ball.Ball.VelocityY = -ball.Ball.VelocityY
			ball.Position.Y = ArenaHeight - radius
		}

		// Paddles. Each side only reflects the ball while it travels
		// toward that side, so a ball still overlapping on the next tick
		// is not reflected twice.
		for paddle := range s.Paddles.Iter() {
			if !overlaps(ball.Position, radius, paddle.Position, paddle.Paddle) {
				continue
			}

			switch paddle.Paddle.Side {
			case SideLeft:
				if ball.Ball.VelocityX < 0 {
					ball.Ball.VelocityX = -ball.Ball.VelocityX
				}
			case SideRight:
				if ball.Ball.VelocityX > 0 {
					ball.Ball.VelocityX = -ball.Ball.VelocityX
				}
			}
		}

		// Out of bounds. The edge crossed scores for the opposite player.
		if ball.Position.X+radius < 0 {
			s.score(frame, ball.EntityId, SideLeft.Opposite())
		} else if ball.Position.X-radius > ArenaWidth {
			s.score(frame, ball.EntityId, SideRight.Opposite())
		}
	}
}

func (s *BounceSystem) score(frame *ecs.UpdateFrame, ball ecs.EntityId, winner Side) {
	goals := s.Goals.Get()
	goals.Pending = append(goals.Pending, GoalEvent{Winner: winner})
	frame.Commands.Delete(ball)
}

// overlaps tests the ball's bounding square against a paddle's rectangle.
func overlaps(ballPos *Position, radius float32, paddlePos *Position, paddle *Paddle) bool {
	halfW := paddle.Width / 2
	halfH := paddle.Height / 2

	return ballPos.X+radius >= paddlePos.X-halfW &&
		ballPos.X-radius <= paddlePos.X+halfW &&
		ballPos.Y+radius >= paddlePos.Y-halfH &&
		ballPos.Y-radius <= paddlePos.Y+halfH
}
