package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage has its own ComponentRegistry, so independent stores can
// coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentTable
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentTable),
	}
}

// RegisterComponent registers a component type with the given registry.
// This must be called for each component type before it can be attached.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() iComponentTable {
		return &componentTable[T]{
			index: intmap.New[EntityId, int](64),
		}
	}
}

// getFactory returns the table factory for a component type, or nil if the
// type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentTable {
	return r.factories[t]
}

// componentTable is a sparse-set table mapping EntityId to a component of
// type T. The dense slice stays in creation order; deletes shift the tail
// down so iteration order remains deterministic.
type componentTable[T any] struct {
	dense []T
	ids   []EntityId
	index *intmap.Map[EntityId, int]
}

// Set inserts or replaces the component for an entity.
func (ct *componentTable[T]) Set(id EntityId, item any) bool {
	var value T
	if ptr, ok := item.(*T); ok {
		value = *ptr
	} else if val, ok := item.(T); ok {
		value = val
	} else {
		panic("component value does not match table type " + reflect.TypeFor[T]().String())
	}

	if pos, ok := ct.index.Get(id); ok {
		ct.dense[pos] = value
		return false
	}

	ct.index.Put(id, len(ct.dense))
	ct.dense = append(ct.dense, value)
	ct.ids = append(ct.ids, id)
	return true
}

// Delete removes the entity's component, preserving creation order of the
// remaining entries. Pointers obtained from Get before a Delete are
// invalidated; structural changes go through Commands so this only happens
// between frames.
func (ct *componentTable[T]) Delete(id EntityId) bool {
	pos, ok := ct.index.Get(id)
	if !ok {
		return false
	}

	copy(ct.dense[pos:], ct.dense[pos+1:])
	copy(ct.ids[pos:], ct.ids[pos+1:])
	var zero T
	ct.dense[len(ct.dense)-1] = zero
	ct.dense = ct.dense[:len(ct.dense)-1]
	ct.ids = ct.ids[:len(ct.ids)-1]

	ct.index.Del(id)
	for i := pos; i < len(ct.ids); i++ {
		ct.index.Put(ct.ids[i], i)
	}
	return true
}

// Get returns a pointer to the entity's component. The pointer is valid
// until the next structural change to the table.
func (ct *componentTable[T]) Get(id EntityId) any {
	pos, ok := ct.index.Get(id)
	if !ok {
		return nil
	}
	return &ct.dense[pos]
}

func (ct *componentTable[T]) Has(id EntityId) bool {
	_, ok := ct.index.Get(id)
	return ok
}

func (ct *componentTable[T]) Len() int {
	return len(ct.dense)
}

func (ct *componentTable[T]) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range ct.ids {
			if !yield(id) {
				return
			}
		}
	}
}
