package ecs

import "iter"

// Query wraps a View with a per-frame result cache. Queries are declared as
// fields on a system struct; the Scheduler initializes them at registration
// and rebuilds their caches before the system runs each frame.
type Query[T any] struct {
	view       *View[T]
	storage    *Storage
	cached     []T
	cacheValid bool
}

// NewQuery creates a standalone Query. Queries embedded in registered
// systems don't need this; the Scheduler calls Init for them.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cacheValid = false
}

// Execute rebuilds the result cache for this frame.
// Called automatically by the Scheduler before the owning system runs.
func (q *Query[T]) Execute() {
	q.cached = q.cached[:0]
	for item := range q.view.Iter() {
		q.cached = append(q.cached, item)
	}
	q.cacheValid = true
}

// Iter returns an iterator over the cached view structs.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cached {
			if !yield(q.cached[i]) {
				return
			}
		}
	}
}

// Count returns the number of entities matched by the last Execute.
func (q *Query[T]) Count() int {
	if !q.cacheValid {
		panic("Query.Count() called before Query.Execute()")
	}
	return len(q.cached)
}
