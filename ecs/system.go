package ecs

// System represents a behavior that operates on entities with specific
// components. User-defined systems implement this interface and may declare
// Query and Singleton fields, which the Scheduler wires up at registration,
// plus any custom state that should persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
