package system

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/ecs/entity"
	"github.com/milk9111/snowfall/prefabs"
	"github.com/milk9111/snowfall/puzzle"
)

const testStepMS = 1000.0 / 60

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 99))
}

func newCollectors(t *testing.T, w *ecs.World) []ecs.Entity {
	t.Helper()
	spec := prefabs.SnowSpec{}.WithDefaults()
	var out []ecs.Entity
	for _, cs := range spec.Collectors {
		e, err := entity.NewCollector(w, cs, 1280, 720)
		if err != nil {
			t.Fatalf("NewCollector: %v", err)
		}
		out = append(out, e)
	}
	return out
}

func collector(t *testing.T, w *ecs.World, e ecs.Entity) *component.Collector {
	t.Helper()
	c, ok := ecs.Get(w, e, component.CollectorComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no collector", e)
	}
	return c
}

func newTestPuzzle(t *testing.T, w *ecs.World, order [puzzle.Cells]int) (ecs.Entity, *component.Puzzle) {
	t.Helper()
	board, err := puzzle.NewBoardFromOrder(order)
	if err != nil {
		t.Fatalf("NewBoardFromOrder: %v", err)
	}
	layout := puzzle.Layout{Origin: image.Pt(100, 100)}
	spec := prefabs.PuzzleSpec{Image: "puzzle_cabin.png", Caption: "cabin"}
	e, err := entity.NewPuzzle(w, spec, board, layout, nil)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	pz, _ := ecs.Get(w, e, component.PuzzleComponent.Kind())
	return e, pz
}

func newTestPointer(t *testing.T, w *ecs.World) *component.Pointer {
	t.Helper()
	e, err := entity.NewPointer(w)
	if err != nil {
		t.Fatalf("NewPointer: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PointerComponent.Kind())
	return p
}

// click puts a one-tick click at p and runs sys.
func click(w *ecs.World, ptr *component.Pointer, p image.Point, sys ecs.System) {
	ptr.X, ptr.Y = p.X, p.Y
	ptr.Clicked = true
	sys.Update(w)
	ptr.Clicked = false
}

func centre(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}
