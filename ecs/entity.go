package ecs

// EntityId is a unique identifier for an entity. Ids are allocated
// monotonically by a Storage and are never reused, so a held id stays
// valid until the entity is deleted and dangling ids simply resolve to
// no components.
type EntityId uint64
