package ecs

// UpdateFrame carries the per-tick context handed to each system: the
// elapsed time since the previous tick in seconds, the command buffer for
// deferred structural changes, and the storage itself.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
