package sim

import "github.com/plus3/paddleball/ecs"

// PaddleSystem moves each paddle vertically according to its side's input
// axis, keeping the paddle fully inside the arena.
type PaddleSystem struct {
	Paddles ecs.Query[struct {
		*Paddle
		*Position
	}]
	Input ecs.Singleton[AxisInput]
}

func (s *PaddleSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()

	for paddle := range s.Paddles.Iter() {
		axis := clamp(input.Axis(paddle.Paddle.Side), -1, 1)

		// The clamp applies even at zero input so the invariant holds on
		// every tick, not just ticks with movement.
		halfHeight := paddle.Paddle.Height / 2
		paddle.Position.Y = clamp(
			paddle.Position.Y+axis*PaddleSpeed*float32(frame.DeltaTime),
			halfHeight,
			ArenaHeight-halfHeight,
		)
	}
}

// clamp returns v limited to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
