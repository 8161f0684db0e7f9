package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motionlayer/ecs"
	"github.com/milk9111/motionlayer/ecs/component"
	"github.com/milk9111/motionlayer/physics"
)

// PhysicsSystem owns the Chipmunk space. It creates bodies for new
// PhysicsBody entities, steps the space by a fixed dt and copies body
// positions back into transforms.
type PhysicsSystem struct {
	space *cp.Space
	dt    float64

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem(cfg physics.SpaceConfig, dt float64) *PhysicsSystem {
	return &PhysicsSystem{
		space:    physics.NewSpace(cfg),
		dt:       dt,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	for _, e := range entities {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, ok := ecs.GetPtr(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		body, shape := physics.AddBody(ps.space, physics.BodySpec{
			Position:      cp.Vector{X: transform.X, Y: transform.Y},
			Width:         bodyComp.Width,
			Height:        bodyComp.Height,
			Radius:        bodyComp.Radius,
			Mass:          bodyComp.Mass,
			Friction:      bodyComp.Friction,
			Elasticity:    bodyComp.Elasticity,
			FixedRotation: bodyComp.FixedRotation,
		})
		if body == nil {
			continue
		}
		if g, ok := ecs.Get(w, e, component.GravityScaleComponent); ok {
			scale := g.Scale
			body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				cp.BodyUpdateVelocity(body, gravity.Mult(scale), damping, dt)
			})
		}

		bodyComp.Body = body
		bodyComp.Shape = shape
		ps.entities[e] = &bodyInfo{body: body, shape: shape}
		log.Printf("PhysicsSystem: created body for entity %s mass=%.2f", e, body.Mass())
	}
}

// cleanupEntities removes bodies whose entity died or lost its PhysicsBody.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		t, ok := ecs.GetPtr(w, e, component.TransformComponent)
		if !ok || info.body == nil {
			continue
		}
		pos := info.body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = info.body.Angle()
	}
}
