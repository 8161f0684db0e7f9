package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motionlayer/motion"
	"github.com/milk9111/motionlayer/physics"
	"github.com/milk9111/motionlayer/prefabs"
)

// scheduled is a preset to register at a given tick.
type scheduled struct {
	preset string
	tick   int
}

func main() {
	file := flag.String("file", prefabs.DefaultOverrideFile, "override preset file (disk copy under -dir wins over the embedded one)")
	dir := flag.String("dir", prefabs.Dir, "directory searched for preset files and scripts")
	schedule := flag.String("schedule", "dash@0", "comma separated preset@tick registrations")
	ticks := flag.Int("ticks", 60, "number of ticks to simulate")
	tps := flag.Int("tps", 60, "ticks per second")
	policyName := flag.String("policy", "planar", "planar (chipmunk body) or spatial (point mass)")
	gravity := flag.Float64("gravity", 0, "downward gravity in units/s²")
	verbose := flag.Bool("v", false, "log directive lifecycle")
	list := flag.Bool("list", false, "list presets and exit")
	flag.Parse()

	prefabs.Dir = *dir
	lib, err := prefabs.LoadLibrary(*file)
	if err != nil {
		log.Fatalf("overridesim: %v", err)
	}
	if *list {
		for _, name := range lib.Names() {
			p, _ := lib.Get(name)
			fmt.Printf("%-12s blend=%-9s channels=%-4s duration=%.2fs priority=%d\n",
				name, p.Directive.Blend(), p.Directive.Channels(), p.Duration, p.Priority)
		}
		return
	}

	plan, err := parseSchedule(*schedule)
	if err != nil {
		log.Fatalf("overridesim: %v", err)
	}
	if *ticks <= 0 || *tps <= 0 {
		log.Fatalf("overridesim: ticks and tps must be positive")
	}

	var opts []motion.EngineOption
	if *verbose {
		opts = append(opts, motion.WithLogger(log.New(os.Stderr, "", log.Lmicroseconds)))
	}

	dt := 1 / float64(*tps)
	clock := motion.NewStepClock(dt)
	sim, err := newSimulation(*policyName, *gravity, clock, opts)
	if err != nil {
		log.Fatalf("overridesim: %v", err)
	}

	for tick := 0; tick < *ticks; tick++ {
		for _, s := range plan {
			if s.tick != tick {
				continue
			}
			p, err := lib.Get(s.preset)
			if err != nil {
				log.Printf("overridesim: tick %d: %v", tick, err)
				continue
			}
			name := s.preset
			at := tick
			p.Directive = p.Directive.OnComplete(func() {
				fmt.Printf("# %s (from tick %d) completed at tick %d\n", name, at, clock.Ticks())
			})
			p.Apply(sim.engine)
		}

		desired := sim.engine.Step()
		sim.advance(dt)
		clock.Tick()

		pos := sim.position()
		fmt.Printf("tick=%-4d t=%.3f layers=%d desired=%s pos=%s\n",
			tick, clock.Now(), sim.engine.Len(), formatVector(desired, sim.engine.Policy()), formatVector(pos, sim.engine.Policy()))
	}
}

// simulation couples an engine to whichever body the policy needs.
type simulation struct {
	engine   *motion.Engine
	advance  func(dt float64)
	position func() motion.Vector
}

func newSimulation(policyName string, gravity float64, clock *motion.StepClock, opts []motion.EngineOption) (*simulation, error) {
	switch strings.ToLower(policyName) {
	case "planar", "2d":
		space := physics.NewSpace(physics.SpaceConfig{Gravity: cp.Vector{Y: gravity}})
		body, _ := physics.AddBody(space, physics.BodySpec{Width: 16, Height: 16, Mass: 1, FixedRotation: true})
		return &simulation{
			engine:   motion.New(motion.Planar, physics.NewBody2D(body), clock, opts...),
			advance:  space.Step,
			position: func() motion.Vector { return physics.FromCP(body.Position()) },
		}, nil
	case "spatial", "3d":
		body := physics.NewBody3D(motion.Vector{})
		body.Gravity = motion.Vec3(0, gravity, 0)
		return &simulation{
			engine:   motion.New(motion.Spatial, body, clock, opts...),
			advance:  body.Integrate,
			position: body.Position,
		}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", policyName)
	}
}

func parseSchedule(s string) ([]scheduled, error) {
	var out []scheduled
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, at, found := strings.Cut(part, "@")
		tick := 0
		if found {
			n, err := strconv.Atoi(at)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad schedule entry %q", part)
			}
			tick = n
		}
		out = append(out, scheduled{preset: name, tick: tick})
	}
	return out, nil
}

func formatVector(v motion.Vector, p motion.Policy) string {
	parts := make([]string, p.Axes())
	for i := range parts {
		parts[i] = strconv.FormatFloat(v[i], 'f', 3, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
