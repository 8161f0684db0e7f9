package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// DefaultIterations matches the solver quality the game uses for platforming.
const DefaultIterations = 20

// SpaceConfig describes a Chipmunk space.
type SpaceConfig struct {
	Gravity    cp.Vector
	Iterations uint
	Damping    float64
}

// NewSpace creates a Chipmunk space from cfg.
func NewSpace(cfg SpaceConfig) *cp.Space {
	space := cp.NewSpace()
	space.Iterations = cfg.Iterations
	if space.Iterations == 0 {
		space.Iterations = DefaultIterations
	}
	space.SetGravity(cfg.Gravity)
	if cfg.Damping > 0 {
		space.SetDamping(cfg.Damping)
	}
	return space
}

// BodySpec describes a dynamic body to add to a space.
type BodySpec struct {
	Position      cp.Vector
	Width         float64
	Height        float64
	Radius        float64
	Mass          float64
	Friction      float64
	Elasticity    float64
	FixedRotation bool
}

// AddBody creates a dynamic body and its collision shape in space. A
// positive radius makes a circle, otherwise a box; a box with no size is 32x32.
func AddBody(space *cp.Space, spec BodySpec) (*cp.Body, *cp.Shape) {
	if space == nil {
		return nil, nil
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	width, height := spec.Width, spec.Height
	if spec.Radius <= 0 && (width <= 0 || height <= 0) {
		width = 32
		height = 32
	}

	var moment float64
	if spec.Radius > 0 {
		moment = cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, width, height)
	}
	if spec.FixedRotation {
		moment = math.Inf(1)
	}

	body := space.AddBody(cp.NewBody(mass, moment))
	body.SetPosition(spec.Position)
	body.SetAngle(0)
	body.SetAngularVelocity(0)

	var shape *cp.Shape
	if spec.Radius > 0 {
		shape = cp.NewCircle(body, spec.Radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(spec.Friction)
	shape.SetElasticity(spec.Elasticity)
	space.AddShape(shape)
	return body, shape
}
