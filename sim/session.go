// Package sim is the authoritative simulation core of a two-paddle ball
// game. It owns the game state (paddles, ball, arena bounds), advances it
// once per tick in a fixed system order, and resolves the collisions that
// produce bounces and goals. Rendering, input devices and scoring UIs are
// external collaborators: they feed axis values in through SetAxis, read
// state back through Snapshot, and observe goals through the events
// returned by Tick.
package sim

import "github.com/plus3/paddleball/ecs"

// Session is one game session: a component store plus the four simulation
// systems run in fixed order (spawn, paddles, movement, bounce). The
// external driver owns the loop and calls Tick once per frame.
type Session struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	input *ecs.Singleton[AxisInput]
	clock *ecs.Singleton[SpawnClock]
	goals *ecs.Singleton[Goals]

	paddles *ecs.View[struct {
		*Paddle
		*Position
	}]
	balls *ecs.View[struct {
		*Ball
		*Position
	}]

	onGoal func(GoalEvent)
}

// NewSession creates a session with both paddles centered on their edges
// and the spawn countdown armed at SpawnDelay.
func NewSession() *Session {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Paddle](registry)
	ecs.RegisterComponent[Ball](registry)

	storage := ecs.NewStorage(registry)

	s := &Session{
		storage: storage,
		clock: ecs.NewSingleton(storage, SpawnClock{
			Phase:     SpawnCounting,
			Remaining: SpawnDelay,
		}),
		input: ecs.NewSingleton[AxisInput](storage),
		goals: ecs.NewSingleton[Goals](storage),
		paddles: ecs.NewView[struct {
			*Paddle
			*Position
		}](storage),
		balls: ecs.NewView[struct {
			*Ball
			*Position
		}](storage),
	}

	y := ArenaHeight / 2
	storage.Spawn(
		Paddle{Side: SideLeft, Width: PaddleWidth, Height: PaddleHeight},
		Position{X: PaddleWidth / 2, Y: y},
	)
	storage.Spawn(
		Paddle{Side: SideRight, Width: PaddleWidth, Height: PaddleHeight},
		Position{X: ArenaWidth - PaddleWidth/2, Y: y},
	)

	s.scheduler = ecs.NewScheduler(storage)
	s.scheduler.Register(&SpawnSystem{})
	s.scheduler.Register(&PaddleSystem{})
	s.scheduler.Register(&MoveBallsSystem{})
	s.scheduler.Register(&BounceSystem{})

	return s
}

// SetAxis records one side's input signal for the next tick. Values are
// clamped to [-1, 1]; positive moves the paddle up.
func (s *Session) SetAxis(side Side, value float32) {
	value = clamp(value, -1, 1)
	input := s.input.Get()
	if side == SideLeft {
		input.Left = value
	} else {
		input.Right = value
	}
}

// OnGoal registers a callback invoked for each goal after the tick that
// produced it has completed. Pass nil to unregister.
func (s *Session) OnGoal(fn func(GoalEvent)) {
	s.onGoal = fn
}

// Tick advances the simulation by dt seconds and returns the goals scored
// during the tick, if any. dt must be non-negative.
func (s *Session) Tick(dt float64) []GoalEvent {
	s.scheduler.Once(dt)

	goals := s.goals.Get()
	if len(goals.Pending) == 0 {
		return nil
	}

	events := make([]GoalEvent, len(goals.Pending))
	copy(events, goals.Pending)
	goals.Pending = goals.Pending[:0]

	if s.onGoal != nil {
		for _, ev := range events {
			s.onGoal(ev)
		}
	}
	return events
}

// Storage exposes the session's component store, primarily for tests and
// debug tooling.
func (s *Session) Storage() *ecs.Storage {
	return s.storage
}

// Stats returns per-system execution statistics for the session.
func (s *Session) Stats() *ecs.SchedulerStats {
	return s.scheduler.GetStats()
}

// PaddleState is a render-ready copy of one paddle.
type PaddleState struct {
	Side          Side
	X, Y          float32
	Width, Height float32
}

// BallState is a render-ready copy of the ball.
type BallState struct {
	X, Y      float32
	VelocityX float32
	VelocityY float32
	Radius    float32
}

// Snapshot is a read-only copy of the visible game state for the render
// collaborator. Ball is nil while no ball is in play.
type Snapshot struct {
	Paddles []PaddleState
	Ball    *BallState
	Spawn   SpawnClock
}

// Snapshot copies the current positions of all entities. The returned value
// shares no memory with the store.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Spawn: *s.clock.Get()}

	for p := range s.paddles.Iter() {
		snap.Paddles = append(snap.Paddles, PaddleState{
			Side:   p.Paddle.Side,
			X:      p.Position.X,
			Y:      p.Position.Y,
			Width:  p.Paddle.Width,
			Height: p.Paddle.Height,
		})
	}

	for b := range s.balls.Iter() {
		snap.Ball = &BallState{
			X:         b.Position.X,
			Y:         b.Position.Y,
			VelocityX: b.Ball.VelocityX,
			VelocityY: b.Ball.VelocityY,
			Radius:    b.Ball.Radius,
		}
		break
	}

	return snap
}
