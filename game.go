package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/snowfall/common"
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/ecs/entity"
	"github.com/milk9111/snowfall/ecs/render"
	"github.com/milk9111/snowfall/ecs/system"
	"github.com/milk9111/snowfall/prefabs"
	"github.com/milk9111/snowfall/puzzle"
	"golang.design/x/clipboard"
)

type Options struct {
	Seed  uint64
	Scene string
	Debug bool
	Watch bool
}

type Game struct {
	frames int

	world      *ecs.World
	scheduler  *ecs.Scheduler
	emitter    ecs.Entity
	background color.Color

	debug   bool
	paused  bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	snowSpec, err := prefabs.LoadSnowSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	sceneSpec, err := prefabs.LoadSceneSpec(opts.Scene)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	w := ecs.NewWorld()

	if _, err := entity.NewPointer(w); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	palette := system.DefaultPalette()
	palette.Highlight = sceneSpec.Highlight.Or(palette.Highlight)
	for _, cs := range snowSpec.Collectors {
		if _, err := entity.NewCollector(w, cs, common.BaseWidth, common.BaseHeight); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		if cs.Scarf {
			palette.Scarf = cs.Color.Or(palette.Scarf)
		}
	}

	emitter, err := entity.NewSnowEmitter(w, *snowSpec, common.BaseWidth, common.BaseHeight)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if err := spawnPuzzles(w, rng, sceneSpec); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewSnowEmitterSystem(rng, common.StepMS),
		system.NewFallSystem(common.StepMS),
		system.NewAccumulationSystem(),
		system.NewTransitionSystem(common.StepMS),
		system.NewPuzzleSystem(),
		system.NewRevealSystem(render.LoadImage),
		system.NewCaptionCopySystem(clipboardWriter()),
	)
	scheduler.AddRender(system.NewRenderSystem(palette))

	g := &Game{
		world:      w,
		scheduler:  scheduler,
		emitter:    emitter,
		background: sceneSpec.Background.Or(color.NRGBA{R: 0x0f, G: 0x1a, B: 0x2b, A: 0xff}),
		debug:      opts.Debug,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir())
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir(), err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// spawnPuzzles creates one puzzle per valid scene entry, laid out in a
// centred grid. Entries without an image or caption are skipped.
func spawnPuzzles(w *ecs.World, rng *rand.Rand, scene *prefabs.SceneSpec) error {
	valid := make([]prefabs.PuzzleSpec, 0, len(scene.Puzzles))
	for _, p := range scene.Puzzles {
		if err := p.Validate(); err != nil {
			log.Printf("puzzle: skipping entry: %v", err)
			continue
		}
		valid = append(valid, p)
	}

	layouts := puzzle.Grid(len(valid), common.BaseWidth, common.BaseHeight, scene.Spacing)
	for i, p := range valid {
		img, err := render.LoadScaledImage(p.Image, puzzle.Size, puzzle.Size)
		if err != nil {
			log.Printf("puzzle: load %q: %v", p.Image, err)
			img = nil
		}
		if _, err := entity.NewPuzzle(w, p, puzzle.NewBoard(rng), layouts[i], img); err != nil {
			return err
		}
	}
	return nil
}

func clipboardWriter() func(string) error {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
		return nil
	}
	return func(s string) error {
		clipboard.Write(clipboard.FmtText, []byte(s))
		return nil
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		g.scheduler.UpdatePaused(g.world)
	} else {
		g.scheduler.Update(g.world)
	}

	for _, evt := range g.world.Events().Take(system.EventPuzzleSolved) {
		if solved, ok := evt.Data.(system.PuzzleSolved); ok {
			log.Printf("puzzle: solved %q (forced=%v)", solved.Caption, solved.Forced)
		}
	}
	return nil
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
			if name == prefabs.SnowSpecFile {
				g.reloadSnow()
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadSnow() {
	spec, err := prefabs.LoadSnowSpec()
	if err != nil {
		log.Printf("prefabs: reload snow: %v", err)
		return
	}
	em, ok := ecs.Get(g.world, g.emitter, component.SnowEmitterComponent.Kind())
	if !ok {
		return
	}
	entity.ConfigureSnowEmitter(em, *spec)
	log.Printf("prefabs: reloaded %s (interval %.0fms)", prefabs.SnowSpecFile, em.IntervalMS)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.scheduler.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d    FPS: %.2f    Entities: %d    Flakes: %d\n",
		g.frames, ebiten.ActualFPS(), len(ecs.Entities(g.world)), len(g.world.Query(component.SnowflakeComponent.Kind())))
	ecs.ForEach(g.world, component.CollectorComponent.Kind(), func(_ ecs.Entity, c *component.Collector) {
		fmt.Fprintf(&b, "%s: %.1f (scale %.2f)\n", c.State.Side, c.State.Accumulated, c.Scale.Value())
	})
	return b.String()
}

// Close releases the prefab watcher, if any.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
