package ecs

import (
	"fmt"

	"github.com/milk9111/motionlayer/ecs/component"
)

// World owns entities and their component storage.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and marks it dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Len counts live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.live
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value under kind id for e, replacing any previous value.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(id, true).Set(e, value)
	return nil
}

// GetComponent returns the raw value stored under kind id for e.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.store(id, false).Get(e)
	return v, v != nil
}

// HasComponent reports whether e has kind id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	return w != nil && w.entities.isAlive(e) && w.store(id, false).Has(e)
}

// RemoveComponent deletes kind id from e.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(id, false).Remove(e)
}

// Query returns entities that have every listed kind, in the storage order of
// the smallest set.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
