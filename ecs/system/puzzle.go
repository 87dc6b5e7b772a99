package system

import (
	"image"
	"log"

	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/puzzle"
	"github.com/milk9111/snowfall/snow"
)

// PuzzleSystem routes clicks to the puzzle under the pointer: the Solve
// control force-solves, a cell click drives the board's state machine.
type PuzzleSystem struct{}

func NewPuzzleSystem() *PuzzleSystem {
	return &PuzzleSystem{}
}

func (s *PuzzleSystem) Interactive() bool { return true }

func (s *PuzzleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ptr, ok := pointer(w)
	if !ok || !ptr.Clicked {
		return
	}
	at := image.Pt(ptr.X, ptr.Y)

	ecs.ForEach(w, component.PuzzleComponent.Kind(), func(e ecs.Entity, pz *component.Puzzle) {
		if pz.Board == nil || pz.Board.Solved() {
			return
		}

		if at.In(pz.Layout.SolveButton()) {
			SolvePuzzle(w, e)
			return
		}

		cell, ok := pz.Layout.CellAt(at)
		if !ok {
			return
		}
		res, err := pz.Board.Click(cell)
		if err != nil {
			log.Printf("puzzle: click cell %d: %v", cell, err)
			return
		}
		if res == puzzle.ClickSolved {
			markSolved(w, e, pz, false)
		}
	})
}

// SolvePuzzle force-solves the puzzle on e. It reports whether the puzzle
// changed; already solved puzzles are left alone.
func SolvePuzzle(w *ecs.World, e ecs.Entity) bool {
	pz, ok := ecs.Get(w, e, component.PuzzleComponent.Kind())
	if !ok || pz.Board == nil {
		return false
	}
	if !pz.Board.Solve() {
		return false
	}
	markSolved(w, e, pz, true)
	return true
}

// SolveAll force-solves every unsolved puzzle and returns how many changed.
func SolveAll(w *ecs.World) int {
	solved := 0
	for _, e := range w.Query(component.PuzzleComponent.Kind()) {
		if SolvePuzzle(w, e) {
			solved++
		}
	}
	return solved
}

func markSolved(w *ecs.World, e ecs.Entity, pz *component.Puzzle, forced bool) {
	if pz.SolvedMarked {
		return
	}
	pz.SolvedMarked = true

	if err := ecs.Add(w, e, component.RevealComponent.Kind(), &component.Reveal{
		ImageKey: pz.ImageKey,
		Caption:  pz.Caption,
		Bounds:   pz.Layout.Bounds(),
		Opacity:  snow.NewTween(0, RevealFadeMS),
	}); err != nil {
		log.Printf("puzzle: add reveal: %v", err)
		return
	}
	w.Events().Push(ecs.Event{Type: EventPuzzleSolved, Data: PuzzleSolved{Caption: pz.Caption, Forced: forced}})
}
