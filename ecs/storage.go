package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns all entities, components and singletons for one session.
// Components live in one typed table per component type, so an entity's id
// is stable for its whole lifetime regardless of which components are
// attached or removed.
//
// Storage is not safe for concurrent use: the tick driver owns it for the
// duration of a frame and hands each system sequential access.
type Storage struct {
	registry   *ComponentRegistry
	tables     map[reflect.Type]iComponentTable
	singletons map[reflect.Type]*singletonEntry

	// entities maps live ids to their attached component count.
	entities *intmap.Map[EntityId, int]
	nextId   EntityId
}

// NewStorage creates a new storage backed by the given component registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		tables:     make(map[reflect.Type]iComponentTable),
		singletons: make(map[reflect.Type]*singletonEntry),
		entities:   intmap.New[EntityId, int](64),
	}
}

// Create allocates a fresh entity id with no components attached.
func (s *Storage) Create() EntityId {
	s.nextId++
	id := s.nextId
	s.entities.Put(id, 0)
	return id
}

// Spawn creates a new entity with the provided components.
// Components may be passed by value or as pointers.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	id := s.Create()
	for _, comp := range components {
		s.AddComponent(id, comp)
	}
	return id
}

// AddComponent attaches a component to an entity, replacing any existing
// component of the same type. The entity id is unaffected.
func (s *Storage) AddComponent(id EntityId, component any) {
	compType := componentTypeOf(component)
	if s.table(compType).Set(id, component) {
		count, _ := s.entities.Get(id)
		s.entities.Put(id, count+1)
	}
}

// RemoveComponent detaches a component from an entity. An entity whose last
// component is removed is destroyed.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	table, ok := s.tables[compType]
	if !ok || !table.Delete(id) {
		return
	}

	count, _ := s.entities.Get(id)
	count--
	if count <= 0 {
		s.entities.Del(id)
	} else {
		s.entities.Put(id, count)
	}
}

// Delete removes all components attached to the entity id.
func (s *Storage) Delete(id EntityId) {
	for _, table := range s.tables {
		table.Delete(id)
	}
	s.entities.Del(id)
}

// Alive reports whether the entity currently exists in the storage.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.entities.Get(id)
	return ok
}

// GetComponent returns a pointer to the entity's component of the given
// type, or nil if the entity does not carry one.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	table, ok := s.tables[compType]
	if !ok {
		return nil
	}
	return table.Get(id)
}

// HasComponent checks if an entity has a specific component type.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	table, ok := s.tables[compType]
	if !ok {
		return false
	}
	return table.Has(id)
}

// table returns the component table for a type, creating it on first use.
// Panics if the type was never registered.
func (s *Storage) table(compType reflect.Type) iComponentTable {
	if table, ok := s.tables[compType]; ok {
		return table
	}

	factory := s.registry.getFactory(compType)
	if factory == nil {
		panic("component type " + compType.String() + " not registered")
	}

	table := factory()
	s.tables[compType] = table
	return table
}

// componentTypeOf resolves the component type of a value, unwrapping one
// level of pointer indirection.
func componentTypeOf(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components are value types: structs or primitives, never pointers,
	// maps, channels, or functions.
	switch compType.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return compType
}

// singletonEntry holds a heap-allocated singleton value so Singleton[T]
// accessors can cache a stable pointer to it.
type singletonEntry struct {
	dataPtr unsafe.Pointer
}

// AddSingleton stores a singleton value in the storage, replacing any
// existing singleton of the same type.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[typ] = &singletonEntry{dataPtr: unsafe.Pointer(ptr.Pointer())}
}

// getSingletonEntry returns the entry for a singleton type, or nil.
func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ComponentReader is the read-only component access surface of a Storage.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
