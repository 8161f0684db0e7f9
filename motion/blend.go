package motion

import (
	"errors"
	"fmt"
	"strings"
)

// BlendMode decides how a directive combines with the velocity accumulated
// from higher priority layers.
type BlendMode int

const (
	// Additive adds the directive's movement on top of the running velocity.
	Additive BlendMode = iota
	// Overwrite replaces the starting velocity on the directive's channels and
	// locks them against lower priorities for the tick.
	Overwrite
	// MaximumMagnitude keeps whichever of the running velocity and the
	// directive's movement is longer.
	MaximumMagnitude
)

var ErrInvalidBlendMode = errors.New("motion: invalid blend mode")

func (b BlendMode) String() string {
	switch b {
	case Additive:
		return "additive"
	case Overwrite:
		return "overwrite"
	case MaximumMagnitude:
		return "maximum"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(b))
	}
}

// ParseBlendMode accepts the names produced by String plus a few aliases.
// An empty string selects MaximumMagnitude.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "additive", "add":
		return Additive, nil
	case "overwrite", "override":
		return Overwrite, nil
	case "", "maximum", "max", "maximum_magnitude", "maximummagnitude":
		return MaximumMagnitude, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBlendMode, s)
	}
}
