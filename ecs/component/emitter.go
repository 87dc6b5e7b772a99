package component

import "github.com/milk9111/snowfall/snow"

// SnowEmitter spawns one flake every IntervalMS over a Width×Height area.
type SnowEmitter struct {
	IntervalMS  float64
	SinceLastMS float64
	Params      snow.FlakeParams
	Width       float64
	Height      float64
	// SpawnY is where flakes start, slightly above the top edge.
	SpawnY float64
}

var SnowEmitterComponent = NewComponent[SnowEmitter]()
