package motion

// Sweep removes every instance whose window has ended at now and runs each
// removed directive's completions exactly once. Removal finishes before any
// callback runs, so callbacks may safely register new directives. Callbacks
// run by priority, highest first, then in registration order.
//
// Sweep returns the number of instances removed.
func Sweep(reg *Registry, now float64) int {
	done := collectExpired(reg, now)
	for _, d := range done {
		d.fire()
	}
	return len(done)
}

// collectExpired is the removal half of Sweep. The priority list is copied
// before any bucket is rewritten.
func collectExpired(reg *Registry, now float64) []Directive {
	if reg == nil {
		return nil
	}
	var priorities []int
	for p := range reg.PrioritiesDescending() {
		priorities = append(priorities, p)
	}

	var done []Directive
	for _, p := range priorities {
		done = append(done, reg.removeExpiredAt(p, func(in *instance) bool {
			return in.expired(now)
		})...)
	}
	return done
}
