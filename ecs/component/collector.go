package component

import "github.com/milk9111/snowfall/snow"

// Collector is a snow figure in a bottom corner. Scale and Opacity hold the
// displayed values, which trail State through a transition.
type Collector struct {
	State   snow.Collector
	Scale   snow.Tween
	Opacity snow.Tween
	// Lashes and Scarf mark the decorated figure.
	Lashes bool
	Scarf  bool
}

var CollectorComponent = NewComponent[Collector]()

const (
	// CollectorWidth and CollectorHeight are the unscaled figure size.
	CollectorWidth  = 120
	CollectorHeight = 180
)
