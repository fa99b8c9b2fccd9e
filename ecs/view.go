package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View represents a query for entities with a specific combination of
// components. The type T must be a struct whose pointer fields name the
// component types to fetch. Named fields can be marked optional with the
// `ecs:"optional"` struct tag; a field of type EntityId receives the
// entity's id.
type View[T any] struct {
	storage *Storage
	fields  []viewField

	hasId    bool
	idOffset uintptr

	// pivot is the first required component type; its table drives
	// iteration, so Iter yields entities in that table's creation order.
	pivot reflect.Type
}

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required; named fields may carry the
// `ecs:"optional"` tag. At least one required component field must exist.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	entityIdType := reflect.TypeFor[EntityId]()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType == entityIdType {
			if v.hasId {
				panic("View struct has more than one EntityId field")
			}
			v.hasId = true
			v.idOffset = field.Offset
			continue
		}

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		// Embedded fields (field.Anonymous) are always required.
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		componentType := fieldType.Elem()
		v.fields = append(v.fields, viewField{
			typ:      componentType,
			offset:   field.Offset,
			optional: isOptional,
		})
		if v.pivot == nil && !isOptional {
			v.pivot = componentType
		}
	}

	if v.pivot == nil {
		panic("View struct needs at least one required component field")
	}

	return v
}

// Fill populates the provided struct pointer with component data for the
// given entity. Returns false if the entity is missing any required
// component; optional components are set to nil when absent.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	// Direct memory access through pre-computed field offsets keeps
	// reflection out of the hot path.
	structPtr := unsafe.Pointer(ptr)

	for i := range v.fields {
		field := &v.fields[i]
		component := v.storage.GetComponent(id, field.typ)
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + field.offset)

		if component == nil {
			if !field.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
		} else {
			componentPtr := (*iface)(unsafe.Pointer(&component)).data
			*(*unsafe.Pointer)(fieldPtr) = componentPtr
		}
	}

	if v.hasId {
		*(*EntityId)(unsafe.Pointer(uintptr(structPtr) + v.idOffset)) = id
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the
// entity doesn't have all the required components.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter returns an iterator over populated view structs for all entities
// that carry every required component, in creation order of the pivot
// component's table. Component pointers inside the yielded struct stay
// valid until the next structural change to the storage.
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		table, ok := v.storage.tables[v.pivot]
		if !ok {
			return
		}

		var result T
		for id := range table.Iter() {
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(result) {
				return
			}
		}
	}
}

// Count returns the number of entities the view currently matches.
func (v *View[T]) Count() int {
	count := 0
	var scratch T
	table, ok := v.storage.tables[v.pivot]
	if !ok {
		return 0
	}
	for id := range table.Iter() {
		if v.Fill(id, &scratch) {
			count++
		}
	}
	return count
}
