package system

import (
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
)

// TransitionSystem eases each collector's displayed scale and opacity toward
// the values its counter implies, and eases reveal fade-ins.
type TransitionSystem struct {
	stepMS float64
}

func NewTransitionSystem(stepMS float64) *TransitionSystem {
	return &TransitionSystem{stepMS: stepMS}
}

func (s *TransitionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.CollectorComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collector, t *component.Transform) {
		c.Scale.Retarget(c.State.Scale())
		c.Opacity.Retarget(c.State.Opacity())
		c.Scale.Step(s.stepMS)
		c.Opacity.Step(s.stepMS)

		t.ScaleX = c.Scale.Value()
		t.ScaleY = c.Scale.Value()
	})

	ecs.ForEach(w, component.RevealComponent.Kind(), func(_ ecs.Entity, r *component.Reveal) {
		if r.Loaded {
			r.Opacity.Step(s.stepMS)
		}
	})
}
