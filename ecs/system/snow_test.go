package system

import (
	"math"
	"testing"

	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/ecs/entity"
	"github.com/milk9111/snowfall/prefabs"
	"github.com/milk9111/snowfall/snow"
)

func newEmitter(t *testing.T, w *ecs.World, spec prefabs.SnowSpec) *component.SnowEmitter {
	t.Helper()
	e, err := entity.NewSnowEmitter(w, spec, 1280, 720)
	if err != nil {
		t.Fatalf("NewSnowEmitter: %v", err)
	}
	em, _ := ecs.Get(w, e, component.SnowEmitterComponent.Kind())
	return em
}

func TestSnowEmitterInterval(t *testing.T) {
	cases := []struct {
		name   string
		stepMS float64
		ticks  int
		want   int
	}{
		{"one_second_at_60tps", testStepMS, 60, 5},
		{"just_before_first", testStepMS, 10, 0},
		{"first_flake", testStepMS, 11, 1},
		{"catch_up_on_long_step", 400, 1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newEmitter(t, w, prefabs.SnowSpec{})
			sys := NewSnowEmitterSystem(testRNG(), c.stepMS)
			for range c.ticks {
				sys.Update(w)
			}
			if got := len(w.Query(component.SnowflakeComponent.Kind())); got != c.want {
				t.Fatalf("expected %d flakes, got %d", c.want, got)
			}
		})
	}
}

func TestSnowEmitterFlakes(t *testing.T) {
	w := ecs.NewWorld()
	newEmitter(t, w, prefabs.SnowSpec{})
	sys := NewSnowEmitterSystem(testRNG(), 180)
	for range 200 {
		sys.Update(w)
	}

	flakes := 0
	ecs.ForEach(w, component.SnowflakeComponent.Kind(), func(e ecs.Entity, f *component.Snowflake) {
		flakes++
		if f.StartY != -10 || f.EndY != 720 {
			t.Fatalf("unexpected path %v -> %v", f.StartY, f.EndY)
		}
		if f.Flake.X < 0 || f.Flake.X >= 1280 {
			t.Fatalf("x out of screen: %v", f.Flake.X)
		}
		if f.Flake.Size < 4 || f.Flake.Size >= 24 {
			t.Fatalf("size out of range: %v", f.Flake.Size)
		}
		if !ecs.Has(w, e, component.TransformComponent.Kind()) || !ecs.Has(w, e, component.RenderLayerComponent.Kind()) {
			t.Fatalf("flake missing transform or layer")
		}
	})
	if flakes != 200 {
		t.Fatalf("expected 200 flakes, got %d", flakes)
	}
}

func TestFallLandsAndReports(t *testing.T) {
	w := ecs.NewWorld()
	flake := snow.Flake{Size: 12, X: 50, Duration: 6, Opacity: 0.5}
	e, err := entity.NewSnowflake(w, flake, -10, 720)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	sys := NewFallSystem(1000)
	for i := 1; i <= 8; i++ {
		sys.Update(w)
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			t.Fatalf("flake destroyed early at %dms", i*1000)
		}
		want := -10 + 730*float64(i)/9
		if math.Abs(tr.Y-want) > 1e-9 {
			t.Fatalf("at %dms expected y=%v, got %v", i*1000, want, tr.Y)
		}
	}
	if w.Events().Len() != 0 {
		t.Fatalf("no landing expected before the fall completes")
	}

	sys.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("flake should be destroyed after 9000ms")
	}
	events := w.Events().Take(EventSnowLanded)
	if len(events) != 1 {
		t.Fatalf("expected one landing, got %d", len(events))
	}
	if landed := events[0].Data.(SnowLanded); landed.Size != 12 {
		t.Fatalf("expected size 12, got %v", landed.Size)
	}
}

func TestLandedFlakesBuildBothCollectors(t *testing.T) {
	w := ecs.NewWorld()
	collectors := newCollectors(t, w)
	for i, x := range []float64{10, 600, 1270} {
		// Different lanes and durations: landing order does not matter.
		flake := snow.Flake{Size: 10, X: x, Duration: 6 + float64(i), Opacity: 0.5}
		if _, err := entity.NewSnowflake(w, flake, -10, 720); err != nil {
			t.Fatal(err)
		}
	}

	fall := NewFallSystem(testStepMS)
	acc := NewAccumulationSystem()
	for range 60 * 13 {
		fall.Update(w)
		acc.Update(w)
	}

	if n := len(w.Query(component.SnowflakeComponent.Kind())); n != 0 {
		t.Fatalf("expected all flakes landed, %d left", n)
	}
	for _, e := range collectors {
		c := collector(t, w, e)
		if math.Abs(c.State.Accumulated-1.2) > 1e-9 {
			t.Fatalf("%v collector: expected 1.2, got %v", c.State.Side, c.State.Accumulated)
		}
	}
}

func TestAccumulationIgnoresOtherEvents(t *testing.T) {
	w := ecs.NewWorld()
	collectors := newCollectors(t, w)
	w.Events().Push(ecs.Event{Type: EventPuzzleSolved, Data: PuzzleSolved{Caption: "x"}})
	w.Events().Push(ecs.Event{Type: EventSnowLanded, Data: SnowLanded{Size: 20}})
	w.Events().Push(ecs.Event{Type: EventSnowLanded, Data: "not a landing"})

	NewAccumulationSystem().Update(w)

	for _, e := range collectors {
		if got := collector(t, w, e).State.Accumulated; math.Abs(got-0.8) > 1e-9 {
			t.Fatalf("expected 0.8, got %v", got)
		}
	}
	if rest := w.Events().Drain(); len(rest) != 1 || rest[0].Type != EventPuzzleSolved {
		t.Fatalf("expected the solved event to remain, got %+v", rest)
	}
}

func TestAccumulationClamps(t *testing.T) {
	w := ecs.NewWorld()
	collectors := newCollectors(t, w)
	for range 10000 {
		ApplyAccumulation(w, 24)
	}
	for _, e := range collectors {
		if got := collector(t, w, e).State.Accumulated; got != snow.MaxAccumulated {
			t.Fatalf("expected clamp at %v, got %v", snow.MaxAccumulated, got)
		}
	}
}

func TestTransitionEasesCollector(t *testing.T) {
	w := ecs.NewWorld()
	collectors := newCollectors(t, w)
	e := collectors[0]

	ApplyAccumulation(w, 1000) // 40 accumulated: visible
	sys := NewTransitionSystem(testStepMS)
	sys.Update(w)

	c := collector(t, w, e)
	if v := c.Opacity.Value(); v <= 0 || v >= 1 {
		t.Fatalf("opacity should be mid-transition, got %v", v)
	}

	for range 120 {
		sys.Update(w)
	}
	wantScale := snow.ScaleFor(40)
	if c.Opacity.Value() != 1 || math.Abs(c.Scale.Value()-wantScale) > 1e-9 {
		t.Fatalf("expected opacity 1 and scale %v, got %v %v", wantScale, c.Opacity.Value(), c.Scale.Value())
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if math.Abs(tr.ScaleX-wantScale) > 1e-9 || tr.ScaleX != tr.ScaleY {
		t.Fatalf("transform scale not synced: %v %v", tr.ScaleX, tr.ScaleY)
	}
}

func TestCollectorPlacement(t *testing.T) {
	w := ecs.NewWorld()
	collectors := newCollectors(t, w)
	left, _ := ecs.Get(w, collectors[0], component.TransformComponent.Kind())
	right, _ := ecs.Get(w, collectors[1], component.TransformComponent.Kind())
	if left.X != 20+component.CollectorWidth/2 {
		t.Fatalf("left collector x = %v", left.X)
	}
	if right.X != 1280-20-component.CollectorWidth/2 {
		t.Fatalf("right collector x = %v", right.X)
	}
	if c := collector(t, w, collectors[0]); c.Opacity.Value() != 0 || c.Scale.Value() != 0.6 {
		t.Fatalf("new collector should start hidden at 0.6, got %v %v", c.Opacity.Value(), c.Scale.Value())
	}
	if c := collector(t, w, collectors[1]); !c.Lashes || !c.Scarf {
		t.Fatalf("right collector should be decorated")
	}

	if _, err := entity.NewCollector(w, prefabs.CollectorSpec{Side: "middle"}, 1280, 720); err == nil {
		t.Fatalf("expected error for unknown side")
	}
}
