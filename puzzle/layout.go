package puzzle

import (
	"image"
	"math"
)

const (
	// Gap separates grid cells.
	Gap = 6
	// CellSize is the drawn edge of one cell after the gap is taken out.
	CellSize = (Size - Gap*(Columns-1)) / Columns

	solveButtonWidth  = 96
	solveButtonHeight = 28
	solveButtonMargin = 12

	// blockHeight is a board plus its Solve control.
	blockHeight = Size + solveButtonMargin + solveButtonHeight
	// screenMargin is kept clear around a grid of boards.
	screenMargin = 8
	// minScale bounds how far Grid shrinks boards to fit.
	minScale = 0.2
)

// Layout positions a board on screen. A zero Scale draws at full size.
type Layout struct {
	Origin image.Point
	Scale  float64
}

func (l Layout) scale() float64 {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}

// px converts a full-size length to screen pixels.
func (l Layout) px(v int) int {
	return int(math.Round(float64(v) * l.scale()))
}

// Bounds is the whole grid.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.px(Size), l.px(Size)).Add(l.Origin)
}

// CellRect is the screen rectangle of a cell.
func (l Layout) CellRect(cell int) image.Rectangle {
	col, row := cell%Columns, cell/Columns
	topLeft := image.Pt(l.px(col*(CellSize+Gap)), l.px(row*(CellSize+Gap))).Add(l.Origin)
	edge := l.px(CellSize)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(edge, edge))}
}

// CellAt returns the cell under p. Points in the gaps hit nothing.
func (l Layout) CellAt(p image.Point) (int, bool) {
	for cell := range Cells {
		if p.In(l.CellRect(cell)) {
			return cell, true
		}
	}
	return 0, false
}

// SolveButton is the rectangle of the Solve control under the grid.
func (l Layout) SolveButton() image.Rectangle {
	w, h := l.px(solveButtonWidth), l.px(solveButtonHeight)
	x := l.Origin.X + (l.px(Size)-w)/2
	y := l.Origin.Y + l.px(Size) + l.px(solveButtonMargin)
	return image.Rect(x, y, x+w, y+h)
}

// Grid lays out n boards in centred rows across a screen of the given size.
// Rows wrap at the screen width, and boards shrink until every row fits.
func Grid(n, screenW, screenH, spacing int) []Layout {
	if n <= 0 {
		return nil
	}
	availW := float64(screenW - 2*screenMargin)
	availH := float64(screenH - 2*screenMargin)

	scale := 1.0
	var cols, rows int
	var blockW, blockH, gap float64
	for {
		blockW = Size * scale
		blockH = blockHeight * scale
		gap = float64(spacing) * scale
		cols = max(1, min(n, int((availW+gap)/(blockW+gap))))
		rows = (n + cols - 1) / cols
		fitsW := float64(cols)*blockW+float64(cols-1)*gap <= availW
		fitsH := float64(rows)*blockH+float64(rows-1)*gap <= availH
		if (fitsW && fitsH) || scale*0.9 < minScale {
			break
		}
		scale *= 0.9
	}

	totalH := float64(rows)*blockH + float64(rows-1)*gap
	top := (float64(screenH) - totalH) / 2

	out := make([]Layout, n)
	for i := range out {
		row, col := i/cols, i%cols
		inRow := min(cols, n-row*cols)
		rowW := float64(inRow)*blockW + float64(inRow-1)*gap
		left := (float64(screenW) - rowW) / 2
		out[i] = Layout{
			Origin: image.Pt(
				int(math.Floor(left+float64(col)*(blockW+gap))),
				int(math.Floor(top+float64(row)*(blockH+gap))),
			),
			Scale: scale,
		}
	}
	return out
}
