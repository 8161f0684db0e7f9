package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/motionlayer/motion"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoName          = errors.New("prefabs: override has no name")
	ErrDuplicateName   = errors.New("prefabs: duplicate override name")
	ErrNoDirection     = errors.New("prefabs: override needs a direction or a velocity")
	ErrAmbiguousSpeed  = errors.New("prefabs: override sets more than one of velocity, speed and curve")
	ErrUnknownEase     = errors.New("prefabs: unknown easing")
	ErrUnknownOverride = errors.New("prefabs: unknown override")
)

// OverrideFile is the top level of an override preset file.
type OverrideFile struct {
	Overrides []OverrideSpec `yaml:"overrides"`
}

// OverrideSpec describes one velocity override preset.
type OverrideSpec struct {
	Name      string      `yaml:"name"`
	Direction *YAMLVector `yaml:"direction"`
	Velocity  *YAMLVector `yaml:"velocity"`
	Speed     *float64    `yaml:"speed"`
	Curve     *CurveSpec  `yaml:"curve"`
	Blend     string      `yaml:"blend"`
	Channels  string      `yaml:"channels"`
	Duration  float64     `yaml:"duration"`
	Priority  int         `yaml:"priority"`
}

// CurveSpec is either an eased ramp between two speeds or a tengo script.
type CurveSpec struct {
	Ease   string             `yaml:"ease"`
	From   float64            `yaml:"from"`
	To     float64            `yaml:"to"`
	Script string             `yaml:"script"`
	Params map[string]float64 `yaml:"params"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadOverrideFile reads and decodes a preset file.
func LoadOverrideFile(filename string) (*OverrideFile, error) {
	spec, err := LoadSpec[OverrideFile](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLVector accepts a sequence of two or three numbers or a mapping with
// x, y and z keys. Missing components are zero.
type YAMLVector struct {
	motion.Vector
}

func (v *YAMLVector) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var parts []float64
		if err := value.Decode(&parts); err != nil {
			return fmt.Errorf("vector: %w", err)
		}
		if len(parts) < 2 || len(parts) > 3 {
			return fmt.Errorf("vector must have 2 or 3 components, got %d", len(parts))
		}
		v.Vector = motion.Vector{}
		copy(v.Vector[:], parts)
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("vector: %w", err)
		}
		v.Vector = motion.Vec3(m.X, m.Y, m.Z)
		return nil
	default:
		return fmt.Errorf("vector must be a sequence or a mapping")
	}
}
