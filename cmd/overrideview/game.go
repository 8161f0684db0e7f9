package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/motionlayer/ecs"
	"github.com/milk9111/motionlayer/ecs/component"
	"github.com/milk9111/motionlayer/ecs/system"
	"github.com/milk9111/motionlayer/motion"
	"github.com/milk9111/motionlayer/physics"
	"github.com/milk9111/motionlayer/prefabs"
	"golang.org/x/image/colornames"
)

const (
	screenWidth    = 480
	screenHeight   = 270
	ticksPerSecond = 60
	floorY         = 240
	bodySize       = 16
)

var presetKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

type Game struct {
	lib     *prefabs.Library
	watcher *prefabs.Watcher

	world   *ecs.World
	sched   *ecs.Scheduler
	physics *system.PhysicsSystem
	clock   *motion.StepClock
	player  ecs.Entity

	log []string
}

func NewGame(lib *prefabs.Library, watcher *prefabs.Watcher, gravity float64, debug bool) *Game {
	clock := motion.NewStepClock(1.0 / ticksPerSecond)

	var logger *log.Logger
	if debug {
		logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	g := &Game{
		lib:     lib,
		watcher: watcher,
		world:   ecs.NewWorld(),
		clock:   clock,
	}
	g.physics = system.NewPhysicsSystem(physics.SpaceConfig{Gravity: cp.Vector{Y: gravity}}, clock.Step())
	g.sched = ecs.NewScheduler(
		system.NewVelocitySystem(lib, clock, logger),
		ecs.SystemFunc(g.collectEvents),
		g.physics,
		&system.ClockSystem{Clock: clock},
	)
	g.buildArena()
	return g
}

func (g *Game) buildArena() {
	space := g.physics.Space()
	walls := [][2]cp.Vector{
		{{X: 0, Y: floorY}, {X: screenWidth, Y: floorY}},
		{{X: 0, Y: 0}, {X: 0, Y: floorY}},
		{{X: screenWidth, Y: 0}, {X: screenWidth, Y: floorY}},
	}
	for _, w := range walls {
		seg := cp.NewSegment(space.StaticBody, w[0], w[1], 1)
		seg.SetFriction(0.8)
		space.AddShape(seg)
	}

	g.player = g.world.CreateEntity()
	mustAdd(ecs.Add(g.world, g.player, component.TransformComponent, component.Transform{X: screenWidth / 2, Y: floorY - bodySize}))
	mustAdd(ecs.Add(g.world, g.player, component.PhysicsBodyComponent, component.PhysicsBody{
		Width: bodySize, Height: bodySize, Mass: 1, Friction: 0.8, FixedRotation: true,
	}))
	mustAdd(ecs.Add(g.world, g.player, component.VelocityControllerComponent, component.VelocityController{}))
}

func mustAdd(err error) {
	if err != nil {
		panic("overrideview: " + err.Error())
	}
}

func (g *Game) Update() error {
	g.pollReload()

	req := component.OverrideRequest{Clear: inpututil.IsKeyJustPressed(ebiten.KeyC)}
	names := g.lib.Names()
	for i, key := range presetKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			req.Presets = append(req.Presets, names[i])
		}
	}
	if req.Clear || len(req.Presets) > 0 {
		mustAdd(ecs.Add(g.world, g.player, component.OverrideRequestComponent, req))
	}

	g.sched.Update(g.world)
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !g.lib.Affects(c) {
				continue
			}
			if c.Kind == prefabs.ChangeSpec && !g.lib.Stale() {
				continue
			}
			if err := g.lib.Reload(); err != nil {
				g.note("reload failed: " + err.Error())
				continue
			}
			g.note("reloaded " + c.Path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.note("watch: " + err.Error())
		default:
			return
		}
	}
}

func (g *Game) collectEvents(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		if done, ok := evt.Data.(ecs.OverrideCompleted); ok {
			g.note(done.Preset + " done")
		}
	}
}

func (g *Game) note(msg string) {
	g.log = append(g.log, msg)
	if len(g.log) > 6 {
		g.log = g.log[len(g.log)-6:]
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	vector.StrokeLine(screen, 0, floorY, screenWidth, floorY, 1, colornames.Slategray, false)

	t, _ := ecs.Get(g.world, g.player, component.TransformComponent)
	vector.DrawFilledRect(screen, float32(t.X-bodySize/2), float32(t.Y-bodySize/2), bodySize, bodySize, colornames.Darkorange, false)

	var sb strings.Builder
	if body, ok := ecs.Get(g.world, g.player, component.PhysicsBodyComponent); ok && body.Body != nil {
		v := body.Body.Velocity()
		fmt.Fprintf(&sb, "v=(%.1f, %.1f)", v.X, v.Y)
		vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(t.X+v.X/4), float32(t.Y+v.Y/4), 1, colornames.White, false)
	}
	if vc, ok := ecs.Get(g.world, g.player, component.VelocityControllerComponent); ok && vc.Engine != nil {
		fmt.Fprintf(&sb, "  layers=%d", vc.Engine.Len())
	}
	fmt.Fprintf(&sb, "  t=%.2f\n", g.clock.Now())
	for i, name := range g.lib.Names() {
		if i >= len(presetKeys) {
			break
		}
		fmt.Fprintf(&sb, "[%d] %s  ", i+1, name)
	}
	sb.WriteString("[C] clear\n")
	for _, line := range g.log {
		sb.WriteString(line + "\n")
	}
	ebitenutil.DebugPrint(screen, sb.String())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
