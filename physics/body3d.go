package physics

import (
	"sync"

	"github.com/milk9111/motionlayer/common"
	"github.com/milk9111/motionlayer/motion"
)

// Body3D is a point mass for spatial engines. Velocity changes from
// DriveToward take effect in full and ignore mass.
type Body3D struct {
	mu       sync.Mutex
	position motion.Vector
	velocity motion.Vector

	// Gravity is added to velocity every second of integration.
	Gravity motion.Vector
	// Drag removes this fraction of velocity per second.
	Drag float64
}

// NewBody3D places a resting body at position.
func NewBody3D(position motion.Vector) *Body3D {
	return &Body3D{position: position}
}

func (b *Body3D) Velocity() motion.Vector {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.velocity
}

func (b *Body3D) DriveToward(target motion.Vector) {
	b.mu.Lock()
	b.velocity = target
	b.mu.Unlock()
}

func (b *Body3D) Position() motion.Vector {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position
}

// SetVelocity writes the velocity without going through an engine.
func (b *Body3D) SetVelocity(v motion.Vector) {
	b.DriveToward(v)
}

// Integrate advances the body by dt seconds.
func (b *Body3D) Integrate(dt float64) {
	if dt <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.velocity = b.velocity.Add(b.Gravity.Scale(dt))
	if b.Drag > 0 {
		b.velocity = b.velocity.Scale(common.Clamp01(1 - b.Drag*dt))
	}
	b.position = b.position.Add(b.velocity.Scale(dt))
}
