package component

import (
	"github.com/milk9111/snowfall/common"
	"github.com/milk9111/snowfall/snow"
)

// Snowflake is a falling particle. Y is derived from ElapsedMS each tick.
type Snowflake struct {
	Flake     snow.Flake
	ElapsedMS float64
	StartY    float64
	EndY      float64
}

// Progress is the completed fraction of the fall in [0, 1].
func (s Snowflake) Progress() float64 {
	d := s.Flake.DurationMS()
	if d <= 0 {
		return 1
	}
	return common.Clamp01(s.ElapsedMS / d)
}

// Y is the current vertical position on a linear path.
func (s Snowflake) Y() float64 {
	return common.Lerp(s.StartY, s.EndY, s.Progress())
}

var SnowflakeComponent = NewComponent[Snowflake]()
