package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfall/puzzle"
)

// Puzzle is a live 2×2 puzzle widget.
type Puzzle struct {
	Board    *puzzle.Board
	Layout   puzzle.Layout
	ImageKey string
	Caption  string
	// Image is nil when the asset could not be loaded; pieces then draw
	// blank.
	Image *ebiten.Image
	// SolvedMarked is set once the board is solved and the reveal has
	// been requested.
	SolvedMarked bool
}

var PuzzleComponent = NewComponent[Puzzle]()
