package system

import (
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
)

// AccumulationSystem feeds every landed flake to every collector.
type AccumulationSystem struct{}

func NewAccumulationSystem() *AccumulationSystem {
	return &AccumulationSystem{}
}

func (s *AccumulationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Take(EventSnowLanded) {
		landed, ok := evt.Data.(SnowLanded)
		if !ok {
			continue
		}
		ApplyAccumulation(w, landed.Size)
	}
}

// ApplyAccumulation adds amount to both collectors regardless of where the
// flake landed.
func ApplyAccumulation(w *ecs.World, amount float64) {
	ecs.ForEach(w, component.CollectorComponent.Kind(), func(_ ecs.Entity, c *component.Collector) {
		c.State.Apply(amount)
	})
}
