package motion

// Policy selects the dimensionality of an engine and the blend rules that go
// with it. The two rule sets differ on purpose and are kept separate.
type Policy int

const (
	// Spatial resolves three axes. Overwrite claims only the directive's
	// channels and MaximumMagnitude compares the masked movement.
	Spatial Policy = iota
	// Planar resolves two axes with no channel masks. The first Overwrite
	// ends resolution and MaximumMagnitude compares against the directive's
	// raw speed.
	Planar
)

// Axes reports how many velocity components the policy resolves.
func (p Policy) Axes() int {
	if p == Planar {
		return 2
	}
	return 3
}

func (p Policy) String() string {
	if p == Planar {
		return "planar"
	}
	return "spatial"
}

// flatten drops the axes a policy does not own.
func (p Policy) flatten(v Vector) Vector {
	if p == Planar {
		v[2] = 0
	}
	return v
}
