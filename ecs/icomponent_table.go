package ecs

import "iter"

// iComponentTable is the type-erased interface over a typed component table.
type iComponentTable interface {
	// Set inserts or replaces the component for an entity.
	// Returns true if the entity was not present before.
	Set(id EntityId, item any) bool
	// Delete removes the entity's component. Returns true if it was present.
	Delete(id EntityId) bool
	// Get returns a pointer to the entity's component, or nil.
	Get(id EntityId) any
	Has(id EntityId) bool
	Len() int
	// Iter yields entity ids in creation order.
	Iter() iter.Seq[EntityId]
}
