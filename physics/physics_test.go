package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motionlayer/motion"
)

func TestBody2DReachesTargetInOneStep(t *testing.T) {
	cases := []struct {
		name   string
		mass   float64
		start  cp.Vector
		target motion.Vector
	}{
		{"unit_mass", 1, cp.Vector{}, motion.Vec2(3, -2)},
		{"heavy", 12.5, cp.Vector{X: 4, Y: 4}, motion.Vec2(-1, 0)},
		{"stop", 0.2, cp.Vector{X: 9, Y: 1}, motion.Vector{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			space := NewSpace(SpaceConfig{})
			body, _ := AddBody(space, BodySpec{Width: 4, Height: 4, Mass: c.mass, FixedRotation: true})
			body.SetVelocityVector(c.start)

			b := NewBody2D(body)
			b.DriveToward(c.target)
			if got := b.Velocity(); !got.ApproxEqual(c.target, 1e-9) {
				t.Fatalf("expected %v, got %v", c.target, got)
			}
			if body.AngularVelocity() != 0 {
				t.Fatalf("impulse at the center must not spin the body")
			}
		})
	}
}

func TestBody2DWithPlanarEngine(t *testing.T) {
	space := NewSpace(SpaceConfig{Gravity: cp.Vector{Y: 10}})
	body, _ := AddBody(space, BodySpec{Radius: 2, Mass: 3})
	clock := motion.NewStepClock(0.1)
	e := motion.New(motion.Planar, NewBody2D(body), clock)

	e.AddDefault(motion.Toward(motion.Vec2(5, 0), motion.WithBlend(motion.Overwrite)), 1)
	e.Step()
	space.Step(clock.Step())
	clock.Tick()

	v := body.Velocity()
	if math.Abs(v.X-5) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Fatalf("expected overwrite then one step of gravity (5,1), got %v", v)
	}

	e.Step()
	if v := body.Velocity(); math.Abs(v.X-5) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Fatalf("overwrite should cancel gravity each tick, got %v", v)
	}
}

func TestNilBody2D(t *testing.T) {
	var b *Body2D
	if b.Velocity() != (motion.Vector{}) {
		t.Fatalf("nil body should report zero velocity")
	}
	b.DriveToward(motion.Vec2(1, 1))
	NewBody2D(nil).DriveToward(motion.Vec2(1, 1))
}

func TestBody3DIntegrate(t *testing.T) {
	b := NewBody3D(motion.Vec3(0, 10, 0))
	b.Gravity = motion.Vec3(0, -10, 0)
	b.DriveToward(motion.Vec3(1, 0, 2))

	b.Integrate(0.5)
	if got := b.Velocity(); !got.ApproxEqual(motion.Vec3(1, -5, 2), 1e-9) {
		t.Fatalf("expected gravity applied, got %v", got)
	}
	if got := b.Position(); !got.ApproxEqual(motion.Vec3(0.5, 7.5, 1), 1e-9) {
		t.Fatalf("unexpected position %v", got)
	}

	b.Integrate(0)
	if got := b.Position(); !got.ApproxEqual(motion.Vec3(0.5, 7.5, 1), 1e-9) {
		t.Fatalf("zero dt must not move the body")
	}
}

func TestBody3DDrag(t *testing.T) {
	b := NewBody3D(motion.Vector{})
	b.Drag = 0.5
	b.SetVelocity(motion.Vec3(4, 0, 0))
	b.Integrate(1)
	if got := b.Velocity(); !got.ApproxEqual(motion.Vec3(2, 0, 0), 1e-9) {
		t.Fatalf("expected half speed, got %v", got)
	}
	b.Drag = 10
	b.Integrate(1)
	if got := b.Velocity(); got != (motion.Vector{}) {
		t.Fatalf("drag past 1 should stop the body, got %v", got)
	}
}

func TestSpatialEngineMaskedOverwrite(t *testing.T) {
	b := NewBody3D(motion.Vector{})
	b.SetVelocity(motion.Vec3(1, 2, 3))
	clock := motion.NewStepClock(1.0 / 50)
	e := motion.New(motion.Spatial, b, clock)

	e.Add(motion.Toward(motion.Vec3(0, 9, 0), motion.WithBlend(motion.Overwrite), motion.WithChannels(motion.ChannelY)), 1, 1)
	e.Step()
	if got := b.Velocity(); !got.ApproxEqual(motion.Vec3(1, 9, 3), 1e-9) {
		t.Fatalf("expected only Y overwritten, got %v", got)
	}
}

func TestAddBodyDefaults(t *testing.T) {
	space := NewSpace(SpaceConfig{})
	if space.Iterations != DefaultIterations {
		t.Fatalf("expected default iterations, got %d", space.Iterations)
	}
	body, shape := AddBody(space, BodySpec{Position: cp.Vector{X: 3, Y: 4}})
	if body.Mass() != 1 || shape == nil {
		t.Fatalf("expected unit mass box, got mass=%v", body.Mass())
	}
	if p := body.Position(); p.X != 3 || p.Y != 4 {
		t.Fatalf("unexpected position %v", p)
	}
	if b, s := AddBody(nil, BodySpec{}); b != nil || s != nil {
		t.Fatalf("nil space should yield nothing")
	}
}
