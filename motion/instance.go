package motion

import "github.com/milk9111/motionlayer/common"

// Handle identifies one registration. The zero Handle is never issued.
type Handle uint64

// instance is a directive bound to the time it was registered.
type instance struct {
	handle    Handle
	directive Directive
	start     float64
	duration  float64
}

// progress is the normalized elapsed time, clamped to [0,1]. Windows with no
// positive length are already over.
func (in *instance) progress(now float64) float64 {
	if in.duration <= 0 {
		return 1
	}
	return common.Clamp01((now - in.start) / in.duration)
}

func (in *instance) expired(now float64) bool {
	return in.progress(now) >= 1
}
