package sim

// Side identifies one of the two players by the arena edge their paddle
// defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Position is an entity's world-space location.
type Position struct {
	X, Y float32
}

// Paddle is one player's bat. Exactly two exist for the lifetime of a
// session, one per side; only their Position changes after creation.
type Paddle struct {
	Side   Side
	Width  float32
	Height float32
}

// Ball carries the ball's velocity and collision radius. At most one ball
// entity exists at any instant.
type Ball struct {
	VelocityX float32
	VelocityY float32
	Radius    float32
}

// SpawnPhase enumerates the ball spawn state machine.
type SpawnPhase int

const (
	// SpawnIdle: no timer armed and no ball on the field.
	SpawnIdle SpawnPhase = iota
	// SpawnCounting: the countdown is ticking.
	SpawnCounting
	// SpawnReady: the ball has been created and is in play.
	SpawnReady
)

func (p SpawnPhase) String() string {
	switch p {
	case SpawnIdle:
		return "idle"
	case SpawnCounting:
		return "counting"
	case SpawnReady:
		return "ready"
	}
	return "unknown"
}

// SpawnClock is the singleton spawn state machine. Remaining is only
// meaningful while Phase is SpawnCounting.
type SpawnClock struct {
	Phase     SpawnPhase
	Remaining float32
}

// AxisInput is the singleton per-side input signal, a scalar in [-1, 1]
// where positive moves the paddle up. The input collaborator writes it once
// per tick; an untouched axis reads 0 and the paddle holds still.
type AxisInput struct {
	Left  float32
	Right float32
}

// Axis returns the signal for one side.
func (in *AxisInput) Axis(side Side) float32 {
	if side == SideLeft {
		return in.Left
	}
	return in.Right
}

// GoalEvent is emitted when the ball leaves the arena through a side edge.
// Winner is the player who scored: the side opposite the edge crossed.
type GoalEvent struct {
	Winner Side
}

// Goals is the singleton queue of goal events accumulated during a tick,
// drained by the session after the tick completes.
type Goals struct {
	Pending []GoalEvent
}
