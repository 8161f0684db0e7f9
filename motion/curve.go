package motion

import (
	"sort"
	"strings"

	"github.com/milk9111/motionlayer/common"
	"github.com/tanema/gween/ease"
)

// SpeedCurve maps normalized elapsed time in [0,1] to a speed.
type SpeedCurve func(t float64) float64

// ConstantSpeed returns a curve that ignores time.
func ConstantSpeed(speed float64) SpeedCurve {
	return func(float64) float64 { return speed }
}

// Linear interpolates from one speed to another over the directive's window.
func Linear(from, to float64) SpeedCurve {
	return Eased(from, to, ease.Linear)
}

// Eased shapes the transition between two speeds with a tween easing function.
func Eased(from, to float64, fn ease.TweenFunc) SpeedCurve {
	if fn == nil {
		fn = ease.Linear
	}
	b := float32(from)
	c := float32(to - from)
	return func(t float64) float64 {
		return float64(fn(float32(common.Clamp01(t)), b, c, 1))
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":        ease.Linear,
	"in_quad":       ease.InQuad,
	"out_quad":      ease.OutQuad,
	"in_out_quad":   ease.InOutQuad,
	"in_cubic":      ease.InCubic,
	"out_cubic":     ease.OutCubic,
	"in_out_cubic":  ease.InOutCubic,
	"in_sine":       ease.InSine,
	"out_sine":      ease.OutSine,
	"in_out_sine":   ease.InOutSine,
	"in_expo":       ease.InExpo,
	"out_expo":      ease.OutExpo,
	"in_back":       ease.InBack,
	"out_back":      ease.OutBack,
	"out_bounce":    ease.OutBounce,
	"in_out_bounce": ease.InOutBounce,
}

// EaseByName looks up an easing function by its snake_case name.
func EaseByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EaseNames lists the names EaseByName understands, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
