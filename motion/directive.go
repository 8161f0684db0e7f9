package motion

// Directive describes one velocity contribution. It is a value: builder
// methods return modified copies and never touch the receiver.
type Directive struct {
	direction Vector
	curve     SpeedCurve
	blend     BlendMode
	channels  ChannelMask
	complete  []func()
}

// Option configures a Directive at construction.
type Option func(*Directive)

// WithBlend sets the blend mode. The default is MaximumMagnitude.
func WithBlend(mode BlendMode) Option {
	return func(d *Directive) { d.blend = mode }
}

// WithChannels restricts a spatial directive to the given axes. Planar engines
// ignore the mask.
func WithChannels(mask ChannelMask) Option {
	return func(d *Directive) { d.channels = mask }
}

// NewDirective pushes along direction at the speed given by curve. Only the
// direction's heading matters; its length is discarded.
func NewDirective(direction Vector, curve SpeedCurve, opts ...Option) Directive {
	if curve == nil {
		curve = ConstantSpeed(0)
	}
	d := Directive{
		direction: direction,
		curve:     curve,
		blend:     MaximumMagnitude,
		channels:  ChannelsXYZ,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// Constant pushes along direction at a fixed speed.
func Constant(direction Vector, speed float64, opts ...Option) Directive {
	return NewDirective(direction, ConstantSpeed(speed), opts...)
}

// Toward targets a single velocity for the whole window.
func Toward(velocity Vector, opts ...Option) Directive {
	return NewDirective(velocity.Normalized(), ConstantSpeed(velocity.Magnitude()), opts...)
}

// OnComplete returns a copy of d that also runs cb when its window ends.
func (d Directive) OnComplete(cb func()) Directive {
	if cb == nil {
		return d
	}
	callbacks := make([]func(), 0, len(d.complete)+1)
	callbacks = append(callbacks, d.complete...)
	d.complete = append(callbacks, cb)
	return d
}

func (d Directive) Direction() Vector     { return d.direction }
func (d Directive) Blend() BlendMode      { return d.blend }
func (d Directive) Channels() ChannelMask { return d.channels }

// Speed evaluates the curve at normalized time t.
func (d Directive) Speed(t float64) float64 {
	if d.curve == nil {
		return 0
	}
	return d.curve(t)
}

// Movement is the unmasked velocity the directive asks for at time t.
func (d Directive) Movement(t float64) Vector {
	return d.direction.Normalized().Scale(d.Speed(t))
}

// fire runs every registered callback in registration order.
func (d Directive) fire() {
	for _, cb := range d.complete {
		cb()
	}
}
