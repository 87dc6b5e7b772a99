package puzzle

import (
	"image"
	"testing"
)

func TestLayoutCells(t *testing.T) {
	l := Layout{Origin: image.Pt(100, 50)}
	if CellSize != 147 {
		t.Fatalf("expected cell size 147, got %d", CellSize)
	}

	cases := []struct {
		name string
		p    image.Point
		cell int
		ok   bool
	}{
		{"top_left", image.Pt(100, 50), 0, true},
		{"top_right", image.Pt(100+153, 60), 1, true},
		{"bottom_left", image.Pt(110, 50+200), 2, true},
		{"bottom_right", image.Pt(399, 349), 3, true},
		{"gap", image.Pt(100+149, 60), 0, false},
		{"outside", image.Pt(10, 10), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell, ok := l.CellAt(c.p)
			if ok != c.ok || (ok && cell != c.cell) {
				t.Fatalf("CellAt(%v) = %d,%v; want %d,%v", c.p, cell, ok, c.cell, c.ok)
			}
		})
	}
}

func TestLayoutSolveButtonBelowGrid(t *testing.T) {
	l := Layout{Origin: image.Pt(0, 0)}
	btn := l.SolveButton()
	if btn.Min.Y <= l.Bounds().Max.Y {
		t.Fatalf("solve button %v overlaps grid %v", btn, l.Bounds())
	}
	if btn.Overlaps(l.Bounds()) {
		t.Fatalf("solve button overlaps grid")
	}
}

func TestLayoutScale(t *testing.T) {
	full := Layout{Origin: image.Pt(10, 20)}
	half := Layout{Origin: image.Pt(10, 20), Scale: 0.5}

	if got := half.Bounds(); got != image.Rect(10, 20, 160, 170) {
		t.Fatalf("half bounds = %v", got)
	}
	if got := half.CellRect(3).Min; got != image.Pt(10+77, 20+77) {
		t.Fatalf("half cell 3 min = %v", got)
	}
	if full.Bounds() != (Layout{Origin: image.Pt(10, 20), Scale: 1}).Bounds() {
		t.Fatalf("zero scale should draw at full size")
	}
	if !half.SolveButton().In(image.Rect(10, 170, 160, 200)) {
		t.Fatalf("half solve button %v outside its block", half.SolveButton())
	}
}

func TestGrid(t *testing.T) {
	ls := Grid(2, 1280, 720, 40)
	if len(ls) != 2 {
		t.Fatalf("expected 2 layouts, got %d", len(ls))
	}
	if ls[0].Bounds().Overlaps(ls[1].Bounds()) {
		t.Fatalf("layouts overlap")
	}
	left := ls[0].Bounds().Min.X
	right := 1280 - ls[1].Bounds().Max.X
	if left-right > 1 || right-left > 1 {
		t.Fatalf("row not centred: %d vs %d", left, right)
	}
	if ls[0].Scale != 1 {
		t.Fatalf("two boards should fit at full size, got scale %v", ls[0].Scale)
	}
	if Grid(0, 1280, 720, 40) != nil {
		t.Fatalf("expected nil for empty grid")
	}
}

func TestGridKeepsEveryBoardOnScreen(t *testing.T) {
	screen := image.Rect(0, 0, 1280, 720)
	for n := 1; n <= 12; n++ {
		ls := Grid(n, screen.Dx(), screen.Dy(), 48)
		if len(ls) != n {
			t.Fatalf("n=%d: got %d layouts", n, len(ls))
		}

		var placed []image.Rectangle
		for i, l := range ls {
			for cell := range Cells {
				if r := l.CellRect(cell); !r.In(screen) {
					t.Fatalf("n=%d board %d cell %d rect %v off screen", n, i, cell, r)
				}
			}
			btn := l.SolveButton()
			if !btn.In(screen) {
				t.Fatalf("n=%d board %d solve button %v off screen", n, i, btn)
			}
			block := l.Bounds().Union(btn)
			for j, other := range placed {
				if block.Overlaps(other) {
					t.Fatalf("n=%d board %d overlaps board %d", n, i, j)
				}
			}
			placed = append(placed, block)
		}
	}
}

func TestGridWraps(t *testing.T) {
	if ls := Grid(3, 1280, 720, 48); ls[0].Scale != 1 || ls[2].Origin.Y != ls[0].Origin.Y {
		t.Fatalf("three boards should share one full size row: %+v", ls)
	}

	ls := Grid(8, 1280, 720, 48)
	if ls[0].Scale >= 1 {
		t.Fatalf("eight boards should be shrunk, got scale %v", ls[0].Scale)
	}
	if ls[4].Origin.Y <= ls[0].Origin.Y {
		t.Fatalf("fifth board should start a new row: %v vs %v", ls[4].Origin, ls[0].Origin)
	}
	if ls[4].Origin.X != ls[0].Origin.X {
		t.Fatalf("full rows should line up: %v vs %v", ls[4].Origin, ls[0].Origin)
	}
}
