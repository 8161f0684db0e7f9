package ecs

import "github.com/milk9111/motionlayer/ecs/component"

// Add stores a copy of value on e. Components live behind a pointer so
// ForEach can update them in place.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.Kind().ID(), &value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind().ID())
}

// Get returns a copy of e's component.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	ptr, ok := GetPtr(w, e, handle)
	if !ok {
		return zero, false
	}
	return *ptr, true
}

// GetPtr returns the stored component for in-place edits.
func GetPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	ptr, ok := value.(*T)
	return ptr, ok
}

// ForEach visits every entity holding handle's component. fn may edit the
// component through the pointer but must not add or remove components of the
// same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.Kind().ID(), false)
	if s.Len() == 0 {
		return
	}
	entities := append([]Entity(nil), s.Entities()...)
	for _, e := range entities {
		if ptr, ok := s.Get(e).(*T); ok {
			fn(e, ptr)
		}
	}
}
