package snow

import "github.com/milk9111/snowfall/common"

// TransitionMS is how long collector scale and opacity changes take.
const TransitionMS = 2000.0

// Tween eases a displayed value toward a target. Retargeting restarts the
// transition from whatever value is currently shown.
type Tween struct {
	From     float64
	To       float64
	Elapsed  float64
	Duration float64
}

// NewTween returns a tween resting at v.
func NewTween(v, durationMS float64) Tween {
	return Tween{From: v, To: v, Elapsed: durationMS, Duration: durationMS}
}

// Value is the currently displayed value.
func (t Tween) Value() float64 {
	if t.Duration <= 0 || t.Elapsed >= t.Duration {
		return t.To
	}
	return common.Lerp(t.From, t.To, Ease(t.Elapsed/t.Duration))
}

// Done reports whether the tween has reached its target.
func (t Tween) Done() bool {
	return t.Duration <= 0 || t.Elapsed >= t.Duration
}

// Retarget starts a new transition toward to. It is a no-op when to is
// already the target.
func (t *Tween) Retarget(to float64) {
	if t.To == to {
		return
	}
	t.From = t.Value()
	t.To = to
	t.Elapsed = 0
}

// Step advances the tween by dtMS milliseconds.
func (t *Tween) Step(dtMS float64) {
	if t.Done() {
		return
	}
	t.Elapsed = min(t.Elapsed+dtMS, t.Duration)
}

// Ease is the CSS "ease" timing curve, cubic-bezier(0.25, 0.1, 0.25, 1),
// solved for x with a few Newton steps.
func Ease(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	const x1, y1, x2, y2 = 0.25, 0.1, 0.25, 1.0

	bez := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	dbez := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}

	t := x
	for range 8 {
		d := dbez(t, x1, x2)
		if d == 0 {
			break
		}
		t -= (bez(t, x1, x2) - x) / d
		t = common.Clamp01(t)
	}
	return bez(t, y1, y2)
}
