package common

import "testing"

func TestClamp01(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.5, 1, 0.5); got != 0.75 {
		t.Fatalf("Lerp(0.5, 1, 0.5) = %v, want 0.75", got)
	}
	if got := Lerp(-10, 720, 0); got != -10 {
		t.Fatalf("Lerp at t=0 = %v, want -10", got)
	}
}
