package motion

import "sync/atomic"

// StepClock is a fixed-timestep clock. The host advances it once per tick.
type StepClock struct {
	step  float64
	ticks atomic.Uint64
}

// NewStepClock returns a clock at zero that advances by step seconds per tick.
func NewStepClock(step float64) *StepClock {
	return &StepClock{step: step}
}

// Now is the simulated time in seconds.
func (c *StepClock) Now() float64 {
	return float64(c.ticks.Load()) * c.step
}

// Tick advances the clock by one step.
func (c *StepClock) Tick() {
	c.ticks.Add(1)
}

// Ticks reports how many steps have elapsed.
func (c *StepClock) Ticks() uint64 {
	return c.ticks.Load()
}

// Step is the length of one tick in seconds.
func (c *StepClock) Step() float64 {
	return c.step
}
