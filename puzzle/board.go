// Package puzzle implements the 2×2 sliding image puzzle: piece layout,
// the click-to-swap state machine and the solved check.
package puzzle

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
)

const (
	// Size is the width and height of a puzzle in logical units.
	Size = 300
	// Columns is the number of cells per row and per column.
	Columns = 2
	// Cells is the number of pieces on a board.
	Cells = Columns * Columns
	// PieceSize is the edge of one image slice.
	PieceSize = Size / Columns
)

var (
	ErrInvalidCell  = errors.New("puzzle: invalid cell")
	ErrInvalidOrder = errors.New("puzzle: order is not a permutation")
)

// CanonicalOffset is the image offset of slice i: 0 or -PieceSize on each
// axis, row-major.
func CanonicalOffset(i int) image.Point {
	return image.Pt(-(i%Columns)*PieceSize, -(i/Columns)*PieceSize)
}

// Piece is one image slice. Correct never changes; Current and Crop are
// exchanged together by a swap.
type Piece struct {
	Correct int
	Current int
	Crop    image.Point
}

type State int

const (
	StateIdle State = iota
	StateArmed
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateSolved:
		return "solved"
	default:
		return "idle"
	}
}

// ClickResult reports what a click did.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickArmed
	ClickSwapped
	ClickSolved
)

// Board holds the pieces of one puzzle in display order: pieces[cell] is
// drawn in grid cell `cell`.
type Board struct {
	pieces   [Cells]Piece
	selected int
	solved   bool
}

// NewBoard builds a board whose display order is a uniform random
// permutation drawn from rng.
func NewBoard(rng *rand.Rand) *Board {
	var order [Cells]int
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	b, _ := NewBoardFromOrder(order)
	return b
}

// NewBoardFromOrder builds a board where cell i shows the slice
// order[i]. Each piece starts with Current equal to its cell.
func NewBoardFromOrder(order [Cells]int) (*Board, error) {
	var seen [Cells]bool
	for _, c := range order {
		if c < 0 || c >= Cells || seen[c] {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, order)
		}
		seen[c] = true
	}

	b := &Board{selected: -1}
	for cell, correct := range order {
		b.pieces[cell] = Piece{
			Correct: correct,
			Current: cell,
			Crop:    CanonicalOffset(correct),
		}
	}
	// A shuffle may land on the identity; that board is only solved once
	// the solved check runs after a click.
	return b, nil
}

// Pieces returns a copy of the pieces in display order.
func (b *Board) Pieces() [Cells]Piece {
	return b.pieces
}

// Piece returns the piece drawn in cell.
func (b *Board) Piece(cell int) (Piece, error) {
	if cell < 0 || cell >= Cells {
		return Piece{}, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	return b.pieces[cell], nil
}

// Currents returns every piece's Current in display order.
func (b *Board) Currents() [Cells]int {
	var out [Cells]int
	for i, p := range b.pieces {
		out[i] = p.Current
	}
	return out
}

func (b *Board) State() State {
	switch {
	case b.solved:
		return StateSolved
	case b.selected >= 0:
		return StateArmed
	default:
		return StateIdle
	}
}

// Selected returns the armed cell, if any.
func (b *Board) Selected() (int, bool) {
	if b.selected < 0 {
		return 0, false
	}
	return b.selected, true
}

func (b *Board) Solved() bool {
	return b.solved
}

// Click feeds a click on the piece in cell into the state machine.
func (b *Board) Click(cell int) (ClickResult, error) {
	if cell < 0 || cell >= Cells {
		return ClickIgnored, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	if b.solved {
		return ClickIgnored, nil
	}
	if b.selected < 0 {
		b.selected = cell
		return ClickArmed, nil
	}

	b.Swap(b.selected, cell)
	b.selected = -1
	if b.checkSolved() {
		return ClickSolved, nil
	}
	return ClickSwapped, nil
}

// Swap exchanges the crop and current index of the pieces in cells a and
// c. Swapping a cell with itself changes nothing.
func (b *Board) Swap(a, c int) {
	if a == c || a < 0 || c < 0 || a >= Cells || c >= Cells {
		return
	}
	pa, pc := &b.pieces[a], &b.pieces[c]
	pa.Crop, pc.Crop = pc.Crop, pa.Crop
	pa.Current, pc.Current = pc.Current, pa.Current
}

// Solve forces every piece back to its correct index and canonical crop.
// It reports whether the board transitioned to solved; calling it on a
// solved board does nothing.
func (b *Board) Solve() bool {
	if b.solved {
		return false
	}
	for i := range b.pieces {
		p := &b.pieces[i]
		p.Current = p.Correct
		p.Crop = CanonicalOffset(p.Correct)
	}
	b.selected = -1
	b.solved = true
	return true
}

func (b *Board) checkSolved() bool {
	for _, p := range b.pieces {
		if p.Current != p.Correct {
			return false
		}
	}
	b.solved = true
	return true
}
