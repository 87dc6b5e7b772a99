package snow

import "math/rand/v2"

// MSPerDurationUnit converts a flake's duration into milliseconds of fall.
const MSPerDurationUnit = 1500.0

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// FlakeParams describes the distributions flakes are drawn from.
type FlakeParams struct {
	Size     Range
	Duration Range
	Opacity  Range
}

// DefaultFlakeParams returns the standard flake distributions.
func DefaultFlakeParams() FlakeParams {
	return FlakeParams{
		Size:     Range{Min: 4, Max: 24},
		Duration: Range{Min: 6, Max: 9},
		Opacity:  Range{Min: 0.3, Max: 0.9},
	}
}

// Flake is a single falling particle.
type Flake struct {
	Size     float64
	X        float64
	Duration float64
	Opacity  float64
}

// DurationMS is how long the flake takes to cross the screen.
func (f Flake) DurationMS() float64 {
	return f.Duration * MSPerDurationUnit
}

// NewFlake draws a flake for a screen of the given width.
func (p FlakeParams) NewFlake(rng *rand.Rand, width float64) Flake {
	return Flake{
		Size:     p.Size.sample(rng),
		X:        Range{Min: 0, Max: width}.sample(rng),
		Duration: p.Duration.sample(rng),
		Opacity:  p.Opacity.sample(rng),
	}
}
