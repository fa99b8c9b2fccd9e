package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/paddleball/ecs"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities ecs.Query[struct {
		*Health
	}]
	ExecuteCount int
	TotalHealth  float64
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Iter() {
		s.TotalHealth += float64(item.Health.Current)
	}
}

type orderProbe struct {
	name  string
	order *[]string
}

func (s *orderProbe) Execute(frame *ecs.UpdateFrame) {
	*s.order = append(*s.order, s.name)
}

func TestSchedulerExecutesSystems(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	movement := &MovementSystem{}
	health := &HealthSystem{}
	scheduler.Register(movement)
	scheduler.Register(health)

	id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
	storage.Spawn(Health{Current: 100, Max: 100})

	scheduler.Once(1.0)

	assert.Equal(t, 1, movement.ExecuteCount)
	assert.Equal(t, 1, health.ExecuteCount)
	assert.Equal(t, 100.0, health.TotalHealth)

	pos := ecs.ReadComponent[Position](storage, id)
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, float32(2), pos.Y)

	scheduler.Once(1.0)

	assert.Equal(t, 2, movement.ExecuteCount)
	assert.Equal(t, float32(2), pos.X)
}

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	var order []string
	scheduler.Register(&orderProbe{name: "first", order: &order})
	scheduler.Register(&orderProbe{name: "second", order: &order})
	scheduler.Register(&orderProbe{name: "third", order: &order})

	scheduler.Once(1.0)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSchedulerRefreshesQueriesEachFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	health := &HealthSystem{}
	scheduler.Register(health)

	storage.Spawn(Health{Current: 50, Max: 100})
	storage.Spawn(Health{Current: 75, Max: 100})

	scheduler.Once(1.0)
	assert.Equal(t, 125.0, health.TotalHealth)

	storage.Spawn(Health{Current: 25, Max: 100})

	scheduler.Once(1.0)
	assert.Equal(t, 150.0, health.TotalHealth)
}

type spawningSystem struct {
	spawned bool
}

func (s *spawningSystem) Execute(frame *ecs.UpdateFrame) {
	if !s.spawned {
		frame.Commands.Spawn(Position{X: 42})
		s.spawned = true
	}
}

func TestSchedulerFlushesCommandsAfterFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	spawner := &spawningSystem{}
	health := &HealthSystem{}
	scheduler.Register(spawner)
	scheduler.Register(health)

	scheduler.Once(1.0)

	view := ecs.NewView[struct {
		*Position
	}](storage)
	assert.Equal(t, 1, view.Count())
}

func TestSchedulerRunCancellation(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	movement := &MovementSystem{}
	scheduler.Register(movement)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		scheduler.Run(ctx, 1*time.Millisecond)
		done <- true
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}

	assert.Greater(t, movement.ExecuteCount, 0)
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	scheduler.Register(&MovementSystem{})
	scheduler.Register(&HealthSystem{})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(4), stats.TotalExecutions)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "HealthSystem", stats.Systems[1].Name)
	assert.Equal(t, int64(2), stats.Systems[0].ExecutionCount)
}
