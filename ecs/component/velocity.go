package component

import "github.com/milk9111/motionlayer/motion"

// VelocityController layers velocity overrides onto an entity's physics body.
// The velocity system creates Engine on first use.
type VelocityController struct {
	Engine *motion.Engine
	// Active maps handles of preset registrations still running to the preset
	// name, so completions can be reported by name.
	Active map[motion.Handle]string
}

var VelocityControllerComponent = NewComponent[VelocityController]()

// OverrideRequest asks the velocity system to register presets on the
// entity's controller at the start of the next tick. Clear drops everything
// already registered first. The request is removed once handled.
type OverrideRequest struct {
	Presets []string
	Clear   bool
}

var OverrideRequestComponent = NewComponent[OverrideRequest]()
