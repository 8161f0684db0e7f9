package motion

// Compose folds every registered instance into one velocity, starting from
// the body's current velocity v0. It reads the registry and nothing else.
//
// Priorities resolve from highest to lowest. An empty registry returns v0.
func Compose(policy Policy, v0 Vector, reg *Registry, now float64) Vector {
	if policy == Planar {
		return composePlanar(policy.flatten(v0), reg, now)
	}
	return composeSpatial(v0, reg, now)
}

func composeSpatial(v0 Vector, reg *Registry, now float64) Vector {
	start := v0
	current := v0
	var overridden ChannelMask

	for p := range reg.PrioritiesDescending() {
		for _, in := range reg.bucket(p) {
			d := in.directive
			raw := d.Movement(in.progress(now))
			masked := raw.Mul(d.channels.Vector())

			switch d.blend {
			case Additive:
				current = current.Add(masked)
			case MaximumMagnitude:
				// whole vector, not per axis
				current = MaxMagnitude(current, masked)
			case Overwrite:
				open := overridden.Complement() & d.channels
				current = current.Add(raw.Sub(start).Mul(open.Vector()))
				overridden |= d.channels
				if overridden.Has(ChannelsXYZ) {
					// every axis is claimed by a higher or equal priority
					return current
				}
			}
		}
	}
	return current
}

func composePlanar(v0 Vector, reg *Registry, now float64) Vector {
	start := v0
	current := v0

	for p := range reg.PrioritiesDescending() {
		for _, in := range reg.bucket(p) {
			d := in.directive
			speed := d.Speed(in.progress(now))
			raw := Planar.flatten(d.direction).Normalized().Scale(speed)

			switch d.blend {
			case Additive:
				current = current.Add(raw)
			case MaximumMagnitude:
				if current.SqrMagnitude() <= speed*speed {
					current = raw
				}
			case Overwrite:
				return current.Add(raw.Sub(start))
			}
		}
	}
	return current
}
