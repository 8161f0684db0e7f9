package motion

import (
	"io"
	"log"
	"sync"
)

// Body is the physical object an engine drives.
type Body interface {
	// Velocity reports the body's current velocity.
	Velocity() Vector
	// DriveToward changes the body so that it moves at target by the end of
	// the current tick.
	DriveToward(target Vector)
}

// Clock reports simulation time in seconds. It must be monotonic.
type Clock interface {
	Now() float64
}

// Engine resolves layered velocity directives for one body. Step is meant to
// be called once per fixed simulation tick; Add, Cancel and Clear may be
// called from other goroutines between ticks.
type Engine struct {
	policy Policy
	body   Body
	clock  Clock
	logger *log.Logger

	mu  sync.Mutex
	reg *Registry
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger routes lifecycle tracing to l.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an engine for body using the blend rules of policy.
func New(policy Policy, body Body, clock Clock, opts ...EngineOption) *Engine {
	e := &Engine{
		policy: policy,
		body:   body,
		clock:  clock,
		logger: log.New(io.Discard, "", 0),
		reg:    NewRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Policy reports the engine's dimensionality.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Clear drops every directive. No completions run.
func (e *Engine) Clear() {
	e.mu.Lock()
	n := e.reg.Len()
	e.reg.Clear()
	e.mu.Unlock()
	if n > 0 {
		e.logger.Printf("motion: cleared %d directive(s)", n)
	}
}

// Add registers d for duration seconds starting now. Higher priorities
// resolve first and may overwrite lower ones.
func (e *Engine) Add(d Directive, duration float64, priority int) Handle {
	now := e.now()
	e.mu.Lock()
	h := e.reg.Add(d, now, duration, priority)
	e.mu.Unlock()
	e.logger.Printf("motion: add #%d blend=%s channels=%s priority=%d duration=%.3f", h, d.blend, d.channels, priority, duration)
	return h
}

// AddDefault registers d at priority 0.
func (e *Engine) AddDefault(d Directive, duration float64) Handle {
	return e.Add(d, duration, 0)
}

// Cancel revokes a directive before its window ends. Its completions do not
// run. Cancel reports whether h was still registered.
func (e *Engine) Cancel(h Handle) bool {
	e.mu.Lock()
	ok := e.reg.Remove(h)
	e.mu.Unlock()
	if ok {
		e.logger.Printf("motion: cancel #%d", h)
	}
	return ok
}

// Active reports whether h is still registered.
func (e *Engine) Active(h Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Contains(h)
}

// Len counts registered directives.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Len()
}

// Resolve composes the current desired velocity without driving the body or
// expiring anything.
func (e *Engine) Resolve() Vector {
	v0 := e.velocity()
	now := e.now()
	e.mu.Lock()
	defer e.mu.Unlock()
	return Compose(e.policy, v0, e.reg, now)
}

// Step runs one tick: read the body's velocity, compose the desired velocity,
// drive the body toward it, then expire finished directives. Completions run
// after the registry lock is released. Step returns the desired velocity.
func (e *Engine) Step() Vector {
	v0 := e.velocity()
	now := e.now()

	e.mu.Lock()
	desired := Compose(e.policy, v0, e.reg, now)
	if e.body != nil {
		e.body.DriveToward(desired)
	}
	done := collectExpired(e.reg, now)
	e.mu.Unlock()

	for _, d := range done {
		d.fire()
	}
	if len(done) > 0 {
		e.logger.Printf("motion: %d directive(s) completed at %.3f", len(done), now)
	}
	return desired
}

func (e *Engine) velocity() Vector {
	if e.body == nil {
		return Vector{}
	}
	return e.policy.flatten(e.body.Velocity())
}

func (e *Engine) now() float64 {
	if e.clock == nil {
		return 0
	}
	return e.clock.Now()
}
