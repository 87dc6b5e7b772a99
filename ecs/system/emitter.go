package system

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/ecs/entity"
)

// SnowEmitterSystem spawns a flake each time an emitter's interval elapses.
type SnowEmitterSystem struct {
	rng    *rand.Rand
	stepMS float64
}

func NewSnowEmitterSystem(rng *rand.Rand, stepMS float64) *SnowEmitterSystem {
	return &SnowEmitterSystem{rng: rng, stepMS: stepMS}
}

func (s *SnowEmitterSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.rng == nil {
		return
	}

	ecs.ForEach(w, component.SnowEmitterComponent.Kind(), func(e ecs.Entity, em *component.SnowEmitter) {
		if em.IntervalMS <= 0 {
			return
		}
		em.SinceLastMS += s.stepMS
		for em.SinceLastMS >= em.IntervalMS {
			em.SinceLastMS -= em.IntervalMS
			flake := em.Params.NewFlake(s.rng, em.Width)
			if _, err := entity.NewSnowflake(w, flake, em.SpawnY, em.Height); err != nil {
				log.Printf("snow: spawn flake: %v", err)
				return
			}
		}
	})
}
