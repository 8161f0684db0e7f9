package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/motionlayer/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
		})
	}
}

func TestEntityReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 7); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(old)

	reused := w.CreateEntity()
	if reused.id() != old.id() || reused.generation() == old.generation() {
		t.Fatalf("expected id reuse with new generation, old=%s new=%s", old, reused)
	}
	if Has(w, reused, h) {
		t.Fatalf("components must not survive destruction")
	}
	if _, ok := Get(w, old, h); ok {
		t.Fatalf("stale handle must not resolve")
	}
	if err := Add(w, old, h, 1); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "update_in_place",
			setup: func() error { return Add(w, e1, h3, 1.5) },
			check: func(t *testing.T) {
				ptr, ok := GetPtr(w, e1, h3)
				if !ok {
					t.Fatalf("expected float present")
				}
				*ptr = 2.5
				if v, _ := Get(w, e1, h3); v != 2.5 {
					t.Fatalf("expected in-place update, got %v", v)
				}
			},
			teardown: func() bool { return Remove(w, e1, h3) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := w.AddComponent(e1, 0, 1); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := w.AddComponent(e1, h1.Kind().ID(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestForEachAndQuery(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	for i, e := range []Entity{e1, e2, e3} {
		if err := Add(w, e, hi, i+1); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	_ = Add(w, e2, hs, "tagged")

	ForEach(w, hi, func(e Entity, v *int) { *v *= 10 })
	for i, e := range []Entity{e1, e2, e3} {
		if v, _ := Get(w, e, hi); v != (i+1)*10 {
			t.Fatalf("entity %s: expected %d, got %d", e, (i+1)*10, v)
		}
	}

	got := w.Query(hi.Kind().ID(), hs.Kind().ID())
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}

	w.DestroyEntity(e1)
	count := 0
	ForEach(w, hi, func(Entity, *int) { count++ })
	if count != 2 {
		t.Fatalf("expected 2 after destroy, got %d", count)
	}
	if q := w.Query(component.NewComponent[bool]().Kind().ID()); q != nil {
		t.Fatalf("expected empty query for unused kind, got %v", q)
	}
}

type countingSystem struct {
	n      int
	events int
}

func (s *countingSystem) Update(w *World) {
	s.n++
	s.events = len(w.Events().Pending())
	w.Events().Push(Event{Type: "tick"})
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld()
	a := &countingSystem{}
	b := &countingSystem{}
	s := NewScheduler(a, nil, b)
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems should be skipped")
	}

	s.Update(w)
	if a.events != 0 || b.events != 1 {
		t.Fatalf("expected later systems to see earlier events, got a=%d b=%d", a.events, b.events)
	}
	if len(w.Events().Pending()) != 0 {
		t.Fatalf("expected events flushed after update")
	}

	s.Update(w)
	if a.n != 2 || a.events != 0 {
		t.Fatalf("events must not leak across ticks")
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Fatalf("expected nil drain from empty queue")
	}
	q.Push(Event{Type: "a"})
	q.Push(Event{Type: "b"})

	got := q.Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Type != "b" {
		t.Fatalf("unexpected drained events %v", got)
	}
	if len(q.Pending()) != 0 {
		t.Fatalf("expected queue empty after drain")
	}

	var nilQueue *EventQueue
	nilQueue.Push(Event{Type: "c"})
	if nilQueue.Drain() != nil {
		t.Fatalf("nil queue should drain nothing")
	}
}
