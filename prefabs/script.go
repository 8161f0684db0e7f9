package prefabs

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/motionlayer/motion"
)

var ErrCurveNoSpeed = errors.New("prefabs: curve script does not define speed")

// scriptCurve evaluates a compiled tengo program that reads t and assigns
// speed. Evaluation is serialized because a compiled program holds its
// globals.
type scriptCurve struct {
	name     string
	mu       sync.Mutex
	compiled *tengo.Compiled
	failed   bool
}

// CompileCurve compiles src into a speed curve. The script sees the
// normalized time as t plus every entry of params as a global, and must set
// a numeric global named speed.
func CompileCurve(name string, src []byte, params map[string]float64) (motion.SpeedCurve, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("prefabs: script %s: %w", name, err)
	}
	for k, v := range params {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("prefabs: script %s: param %s: %w", name, k, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("prefabs: run %s: %w", name, err)
	}
	if !compiled.IsDefined("speed") {
		return nil, fmt.Errorf("%w: %s", ErrCurveNoSpeed, name)
	}

	sc := &scriptCurve{name: name, compiled: compiled}
	return sc.eval, nil
}

// eval never fails. A script error yields zero speed and is logged once.
func (sc *scriptCurve) eval(t float64) float64 {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if err := sc.compiled.Set("t", t); err != nil {
		sc.report(err)
		return 0
	}
	if err := sc.compiled.Run(); err != nil {
		sc.report(err)
		return 0
	}
	return sc.compiled.Get("speed").Float()
}

func (sc *scriptCurve) report(err error) {
	if sc.failed {
		return
	}
	sc.failed = true
	log.Printf("prefabs: curve script %s: %v", sc.name, err)
}
