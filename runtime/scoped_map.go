// Package runtime holds the interpreter's mutable state: the
// copy-on-write scoped maps backing mixing bowls and baking dishes, and
// the Ingredient scalar type.
package runtime

// ScopedMap is a copy-on-write, read-through map: Get reads through to
// an optional parent when a key is absent locally, while Ensure clones
// the parent's value into the local map on first touch. A parent is
// never mutated through a child — this is how an auxiliary recipe call
// can see the caller's bowls and dishes yet can only ever affect its
// own local copies. Grounded on spec.md §4.3 / chef-rs's LazyTreeMap.
type ScopedMap[K comparable, V any] struct {
	local  map[K]V
	parent *ScopedMap[K, V]
}

// NewScopedMap returns an empty ScopedMap with the given parent (nil
// for none).
func NewScopedMap[K comparable, V any](parent *ScopedMap[K, V]) *ScopedMap[K, V] {
	return &ScopedMap[K, V]{local: make(map[K]V), parent: parent}
}

// Get returns the local binding for key if present, else delegates to
// the parent chain. ok is false if no ancestor has it either. Values
// read through a parent are not duplicated until Ensure is called.
func (s *ScopedMap[K, V]) Get(key K) (V, bool) {
	if v, ok := s.local[key]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.Get(key)
	}
	var zero V
	return zero, false
}

// Ensure returns the local binding for key, creating it first if
// necessary: cloning the nearest ancestor's value via clone if one
// exists, or constructing a fresh value via factory otherwise. The
// returned value is always the local map's own copy — callers that
// mutate it must write it back with Set.
func (s *ScopedMap[K, V]) Ensure(key K, clone func(V) V, factory func() V) V {
	if v, ok := s.local[key]; ok {
		return v
	}
	if s.parent != nil {
		if v, ok := s.parent.Get(key); ok {
			cloned := clone(v)
			s.local[key] = cloned
			return cloned
		}
	}
	v := factory()
	s.local[key] = v
	return v
}

// Set writes value directly into the local map, without consulting the
// parent. Used after mutating a value obtained from Ensure.
func (s *ScopedMap[K, V]) Set(key K, value V) {
	s.local[key] = value
}

// HasLocal reports whether key has a binding in the local map, without
// consulting the parent chain.
func (s *ScopedMap[K, V]) HasLocal(key K) bool {
	_, ok := s.local[key]
	return ok
}

// LocalKeys returns the keys present in the local map only (not the
// parent chain), in no particular order.
func (s *ScopedMap[K, V]) LocalKeys() []K {
	keys := make([]K, 0, len(s.local))
	for k := range s.local {
		keys = append(keys, k)
	}
	return keys
}
