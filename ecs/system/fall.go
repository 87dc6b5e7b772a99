package system

import (
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
)

// FallSystem moves flakes down their linear path. A flake that completes
// its fall is destroyed and reported as an EventSnowLanded.
type FallSystem struct {
	stepMS float64
}

func NewFallSystem(stepMS float64) *FallSystem {
	return &FallSystem{stepMS: stepMS}
}

func (s *FallSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.SnowflakeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, flake *component.Snowflake, t *component.Transform) {
		flake.ElapsedMS += s.stepMS
		t.Y = flake.Y()
		if flake.Progress() < 1 {
			return
		}

		size := flake.Flake.Size
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: EventSnowLanded, Data: SnowLanded{Size: size}})
	})
}
