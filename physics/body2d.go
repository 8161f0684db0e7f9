package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motionlayer/motion"
)

// Body2D drives a Chipmunk body from a planar motion engine.
type Body2D struct {
	Body *cp.Body
}

// NewBody2D wraps b.
func NewBody2D(b *cp.Body) *Body2D {
	return &Body2D{Body: b}
}

// Velocity reports the body's linear velocity.
func (b *Body2D) Velocity() motion.Vector {
	if b == nil || b.Body == nil {
		return motion.Vector{}
	}
	return FromCP(b.Body.Velocity())
}

// DriveToward applies an impulse at the body's center sized so the body
// reaches target in one step. Bodies without a finite mass have their
// velocity written directly.
func (b *Body2D) DriveToward(target motion.Vector) {
	if b == nil || b.Body == nil {
		return
	}
	delta := ToCP(target).Sub(b.Body.Velocity())
	mass := b.Body.Mass()
	if mass <= 0 || math.IsInf(mass, 0) {
		b.Body.SetVelocityVector(ToCP(target))
		return
	}
	b.Body.ApplyImpulseAtWorldPoint(delta.Mult(mass), b.Body.Position())
}

// FromCP converts a Chipmunk vector to a planar motion vector.
func FromCP(v cp.Vector) motion.Vector {
	return motion.Vec2(v.X, v.Y)
}

// ToCP drops Z.
func ToCP(v motion.Vector) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Y()}
}
