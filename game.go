package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/barrelclimb/assets"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/ecs/entity"
	"github.com/milk9111/barrelclimb/ecs/system"
	"github.com/milk9111/barrelclimb/levels"
	"github.com/milk9111/barrelclimb/prefabs"
)

type Options struct {
	Level string
	Debug bool
	Watch bool
}

// content is everything a scene is built from. It is replaced as a whole,
// and only once a scene has been built from it.
type content struct {
	level      *levels.Level
	set        *prefabs.Set
	delay      system.DelayFunc
	background color.Color
}

// scene is one built world and the systems that run it.
type scene struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
}

// sceneKeys are the per-tick scene commands.
type sceneKeys struct {
	Restart bool
	Pause   bool
}

func readSceneKeys() sceneKeys {
	return sceneKeys{
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

type Game struct {
	opts Options

	*content
	*scene

	load  func() (*content, error)
	keys  func() sceneKeys
	input func() system.InputFrame

	paused           bool
	restartRequested bool
	pauseUI          *ebitenui.UI

	watcher      *prefabs.Watcher
	reloadReason string
}

func NewGame(opts Options) (*Game, error) {
	g, err := newGame(opts, system.PollInput)
	if err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func newGame(opts Options, input func() system.InputFrame) (*Game, error) {
	g := &Game{
		opts:  opts,
		keys:  readSceneKeys,
		input: input,
	}
	g.load = func() (*content, error) { return loadContent(g.opts.Level) }

	c, err := g.load()
	if err != nil {
		return nil, err
	}
	s, err := g.buildScene(c)
	if err != nil {
		return nil, err
	}
	g.swap(c, s)
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// loadContent reads the level descriptor, prefabs and spawn script.
func loadContent(level string) (*content, error) {
	lvl, err := levels.Load(level)
	if err != nil {
		return nil, fmt.Errorf("game: load level: %w", err)
	}
	if err := checkTextures(lvl); err != nil {
		return nil, fmt.Errorf("game: load level: %w", err)
	}
	set, err := prefabs.LoadSet()
	if err != nil {
		return nil, fmt.Errorf("game: load prefabs: %w", err)
	}
	delay, err := system.LoadDelayScript(set.Barrel.Script)
	if err != nil {
		log.Printf("game: spawn script unavailable, using random delays: %v", err)
		delay = system.RandomDelay
	}

	return &content{
		level:      lvl,
		set:        set,
		delay:      delay,
		background: set.Game.Background.ColorOr(color.NRGBA{R: 0x33, G: 0xA5, B: 0xE7, A: 0xFF}),
	}, nil
}

// checkTextures resolves every platform key of lvl to an embedded texture.
func checkTextures(lvl *levels.Level) error {
	for i, p := range lvl.Platforms {
		if _, err := assets.TexturePath(p.Key); err != nil {
			return fmt.Errorf("platform %d: %w", i, err)
		}
	}
	return nil
}

// buildScene builds a fresh world from c. Every per-scene value (timers,
// jumps, restart guard, barrel pool, spawner) starts over.
func (g *Game) buildScene(c *content) (*scene, error) {
	world := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(world, c.level, c.set); err != nil {
		return nil, fmt.Errorf("game: build scene: %w", err)
	}

	physics := system.NewPhysicsSystem(c.set.Game.Gravity)
	physics.SetBoundsElasticity(c.set.Barrel.BounceX, c.set.Barrel.BounceY)

	controller := system.NewPlayerControllerSystem()
	if g.opts.Debug {
		controller = controller.WithJumpEvents()
	}

	scheduler := ecs.NewScheduler(
		system.NewInputSystemWithSource(g.input),
		controller,
		system.NewSpawnerSystem(c.delay, entity.BarrelFactory(c.set.Barrel)),
		system.NewTTLSystem(),
		physics,
		system.NewHazardSystem(c.set.Game.FadeMs),
		system.NewFadeSystem(),
		system.NewCameraSystem(),
		system.NewAnimationSystem(),
		system.NewTweenSystem(),
	)
	scheduler.AddRenderer(system.NewRenderSystem())
	scheduler.AddRenderer(ecs.RendererFunc(system.DrawTouchControls))
	scheduler.AddRenderer(ecs.RendererFunc(system.DrawFade))

	return &scene{world: world, scheduler: scheduler, physics: physics}, nil
}

func (g *Game) swap(c *content, s *scene) {
	g.content = c
	g.scene = s
	g.paused = false
}

// rebuild replaces the running scene with one built from c. On failure the
// running scene and content are kept and pending reload requests dropped.
func (g *Game) rebuild(c *content, reason string) bool {
	g.restartRequested = false
	if g.opts.Debug {
		log.Printf("restart: %s", reason)
	}
	s, err := g.buildScene(c)
	if err != nil {
		log.Printf("restart failed: %v", err)
		for _, e := range g.world.Query(component.ReloadRequestComponent.Kind()) {
			ecs.DestroyEntity(g.world, e)
		}
		return false
	}
	g.swap(c, s)
	return true
}

func (g *Game) restart(reason string) bool {
	return g.rebuild(g.content, reason)
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.step(g.keys())
	if g.paused {
		g.pauseUI.Update()
	}
	return nil
}

// step advances the scene by one tick given this tick's scene keys.
func (g *Game) step(keys sceneKeys) {
	if g.reloadReason != "" {
		reason := g.reloadReason
		g.reloadReason = ""
		c, err := g.load()
		if err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		g.rebuild(c, reason)
		return
	}

	if keys.Restart || g.restartRequested {
		g.restart("restart key")
		return
	}

	if keys.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.scheduler.Update(g.world)
	g.drainEvents()

	if e, ok := ecs.First(g.world, component.ReloadRequestComponent); ok {
		reason := "reload"
		if req, ok := ecs.Get(g.world, e, component.ReloadRequestComponent); ok && req.Reason != "" {
			reason = req.Reason
		}
		g.restart(reason)
	}
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		if !g.opts.Debug {
			continue
		}
		if evt.Detail != "" {
			log.Printf("event: %s %s (%s)", evt.Kind, evt.Source, evt.Detail)
		} else {
			log.Printf("event: %s %s", evt.Kind, evt.Source)
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadReason = "hot reload: " + name
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("hot reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.scheduler.Draw(g.world, screen)

	if g.opts.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawHazardDebug(g.world, screen)
		system.DrawPlayerDebug(g.world, screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.set.Game.Width), float64(g.set.Game.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
