// Package snow holds the snowfall and snow-figure rules independent of
// rendering.
package snow

// Side places a collector in a bottom corner of the screen.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

const (
	// MaxAccumulated caps a collector's counter.
	MaxAccumulated = 160.0
	// AccumulationRate converts landed flake size into accumulated snow.
	AccumulationRate = 0.04
	// VisibleThreshold is the counter value a collector must exceed to show.
	VisibleThreshold = 30.0

	minScale = 0.6
	maxScale = 1.0
)

// Collector is a snow figure that grows as flakes land.
type Collector struct {
	Side        Side
	Accumulated float64
}

// Apply adds a landed flake of the given size. Negative amounts are ignored
// so the counter never decreases.
func (c *Collector) Apply(amount float64) {
	if c == nil || amount <= 0 {
		return
	}
	c.Accumulated = min(c.Accumulated+amount*AccumulationRate, MaxAccumulated)
}

// Scale is the display scale for the current counter.
func (c Collector) Scale() float64 {
	return ScaleFor(c.Accumulated)
}

// Visible reports whether the figure is shown.
func (c Collector) Visible() bool {
	return c.Accumulated > VisibleThreshold
}

// Opacity is 1 when visible and 0 otherwise.
func (c Collector) Opacity() float64 {
	if c.Visible() {
		return 1
	}
	return 0
}

// ScaleFor maps an accumulated counter to a display scale in [0.6, 1].
func ScaleFor(accumulated float64) float64 {
	accumulated = max(accumulated, 0)
	return min(minScale+accumulated/MaxAccumulated*(maxScale-minScale), maxScale)
}
