package prefabs

import (
	"fmt"
	"strings"

	"github.com/milk9111/motionlayer/motion"
)

// Preset is an override ready to register with an engine.
type Preset struct {
	Name      string
	Directive motion.Directive
	Duration  float64
	Priority  int
}

// Apply registers the preset on e.
func (p Preset) Apply(e *motion.Engine) motion.Handle {
	return e.Add(p.Directive, p.Duration, p.Priority)
}

// BuildPreset turns a spec into a preset.
func BuildPreset(spec OverrideSpec) (Preset, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return Preset{}, ErrNoName
	}
	d, err := BuildDirective(spec)
	if err != nil {
		return Preset{}, fmt.Errorf("prefabs: override %q: %w", name, err)
	}
	return Preset{
		Name:      name,
		Directive: d,
		Duration:  spec.Duration,
		Priority:  spec.Priority,
	}, nil
}

// BuildDirective converts the motion part of a spec. A velocity stands alone;
// a direction needs exactly one of speed or curve.
func BuildDirective(spec OverrideSpec) (motion.Directive, error) {
	blend, err := motion.ParseBlendMode(spec.Blend)
	if err != nil {
		return motion.Directive{}, err
	}
	channels, err := motion.ParseChannelMask(spec.Channels)
	if err != nil {
		return motion.Directive{}, err
	}
	opts := []motion.Option{motion.WithBlend(blend), motion.WithChannels(channels)}

	set := 0
	for _, present := range []bool{spec.Velocity != nil, spec.Speed != nil, spec.Curve != nil} {
		if present {
			set++
		}
	}
	if set > 1 {
		return motion.Directive{}, ErrAmbiguousSpeed
	}

	if spec.Velocity != nil {
		if spec.Direction != nil {
			return motion.Directive{}, ErrAmbiguousSpeed
		}
		return motion.Toward(spec.Velocity.Vector, opts...), nil
	}
	if spec.Direction == nil {
		return motion.Directive{}, ErrNoDirection
	}

	curve, err := buildCurve(spec)
	if err != nil {
		return motion.Directive{}, err
	}
	return motion.NewDirective(spec.Direction.Vector, curve, opts...), nil
}

func buildCurve(spec OverrideSpec) (motion.SpeedCurve, error) {
	switch {
	case spec.Speed != nil:
		return motion.ConstantSpeed(*spec.Speed), nil
	case spec.Curve == nil:
		return nil, fmt.Errorf("%w: direction without speed or curve", ErrNoDirection)
	case strings.TrimSpace(spec.Curve.Script) != "":
		src, err := LoadScript(spec.Curve.Script)
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", spec.Curve.Script, err)
		}
		return CompileCurve(spec.Curve.Script, src, spec.Curve.Params)
	default:
		name := spec.Curve.Ease
		if strings.TrimSpace(name) == "" {
			name = "linear"
		}
		fn, ok := motion.EaseByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEase, spec.Curve.Ease)
		}
		return motion.Eased(spec.Curve.From, spec.Curve.To, fn), nil
	}
}
