package component

// Transform is an entity's position in world space, synced from its physics
// body after each step.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
