package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/paddleball/ecs"
)

type GameClock struct {
	Elapsed float64
}

func TestSingletonWithInitializer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	clock := ecs.NewSingleton(storage, GameClock{Elapsed: 10})
	assert.True(t, clock.Exists())
	assert.Equal(t, 10.0, clock.Get().Elapsed)
}

func TestSingletonZeroValue(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	clock := ecs.NewSingleton[GameClock](storage)
	assert.True(t, clock.Exists())
	assert.Equal(t, 0.0, clock.Get().Elapsed)
}

func TestSingletonSharedAcrossAccessors(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := ecs.NewSingleton(storage, GameClock{Elapsed: 1})
	second := ecs.NewSingleton[GameClock](storage)

	first.Get().Elapsed = 99
	assert.Equal(t, 99.0, second.Get().Elapsed)

	// A later accessor must not reset the stored value.
	third := ecs.NewSingleton(storage, GameClock{Elapsed: 5})
	assert.Equal(t, 99.0, third.Get().Elapsed)
}

type clockSystem struct {
	Clock ecs.Singleton[GameClock]
}

func (s *clockSystem) Execute(frame *ecs.UpdateFrame) {
	s.Clock.Get().Elapsed += frame.DeltaTime
}

func TestSingletonFieldInjection(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[GameClock](storage)

	scheduler := ecs.NewScheduler(storage)
	system := &clockSystem{}
	scheduler.Register(system)

	scheduler.Once(0.5)
	scheduler.Once(0.25)

	assert.Equal(t, 0.75, system.Clock.Get().Elapsed)
}
