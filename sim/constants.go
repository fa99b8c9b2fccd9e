package sim

// Arena coordinates are world units with the origin at the bottom-left.
const (
	ArenaWidth  float32 = 100.0
	ArenaHeight float32 = 100.0

	PaddleWidth  float32 = 4.0
	PaddleHeight float32 = 16.0
	// PaddleSpeed is the paddle's vertical speed in units per second at
	// full axis deflection.
	PaddleSpeed float32 = 75.0

	BallRadius    float32 = 2.0
	BallVelocityX float32 = 45.0
	BallVelocityY float32 = 20.0

	// SpawnDelay is the countdown, in simulated seconds, before a ball
	// appears at session start and after each goal.
	SpawnDelay float32 = 3.0
)
