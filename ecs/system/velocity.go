package system

import (
	"log"

	"github.com/milk9111/motionlayer/ecs"
	"github.com/milk9111/motionlayer/ecs/component"
	"github.com/milk9111/motionlayer/motion"
	"github.com/milk9111/motionlayer/physics"
	"github.com/milk9111/motionlayer/prefabs"
)

// VelocitySystem runs each entity's override engine once per tick. It turns
// OverrideRequest components into registrations and publishes an
// OverrideCompleted event when a preset's window ends.
type VelocitySystem struct {
	library *prefabs.Library
	clock   motion.Clock
	logger  *log.Logger
}

func NewVelocitySystem(library *prefabs.Library, clock motion.Clock, logger *log.Logger) *VelocitySystem {
	return &VelocitySystem{library: library, clock: clock, logger: logger}
}

func (s *VelocitySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.VelocityControllerComponent, func(e ecs.Entity, vc *component.VelocityController) {
		if vc.Engine == nil && !s.bind(w, e, vc) {
			return
		}
		s.handleRequest(w, e, vc)
		vc.Engine.Step()
	})
}

// bind creates the engine once the physics system has built the body.
func (s *VelocitySystem) bind(w *ecs.World, e ecs.Entity, vc *component.VelocityController) bool {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok || body.Body == nil {
		return false
	}
	var opts []motion.EngineOption
	if s.logger != nil {
		opts = append(opts, motion.WithLogger(s.logger))
	}
	vc.Engine = motion.New(motion.Planar, physics.NewBody2D(body.Body), s.clock, opts...)
	vc.Active = make(map[motion.Handle]string)
	return true
}

func (s *VelocitySystem) handleRequest(w *ecs.World, e ecs.Entity, vc *component.VelocityController) {
	req, ok := ecs.Get(w, e, component.OverrideRequestComponent)
	if !ok {
		return
	}
	ecs.Remove(w, e, component.OverrideRequestComponent)

	if req.Clear {
		vc.Engine.Clear()
		clear(vc.Active)
	}
	if s.library == nil {
		return
	}
	for _, name := range req.Presets {
		preset, err := s.library.Get(name)
		if err != nil {
			s.logf("velocity: entity %s: %v", e, err)
			continue
		}
		done := &completion{world: w, entity: e, preset: name, active: vc.Active}
		done.handle = vc.Engine.Add(preset.Directive.OnComplete(done.fire), preset.Duration, preset.Priority)
		vc.Active[done.handle] = name
	}
}

func (s *VelocitySystem) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// completion carries what a finished preset needs to report itself.
type completion struct {
	world  *ecs.World
	entity ecs.Entity
	preset string
	handle motion.Handle
	active map[motion.Handle]string
}

func (c *completion) fire() {
	delete(c.active, c.handle)
	c.world.Events().Push(ecs.Event{
		Type: ecs.EventOverrideCompleted,
		Data: ecs.OverrideCompleted{Entity: c.entity, Preset: c.preset},
	})
}

// ClockSystem advances the shared simulation clock. Schedule it last.
type ClockSystem struct {
	Clock *motion.StepClock
}

func (s *ClockSystem) Update(*ecs.World) {
	if s == nil || s.Clock == nil {
		return
	}
	s.Clock.Tick()
}
