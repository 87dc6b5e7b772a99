package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/prefabs"
	"github.com/milk9111/snowfall/puzzle"
)

// NewPuzzle creates a puzzle widget. img may be nil when the asset failed
// to load; the widget still works but draws blank pieces.
func NewPuzzle(w *ecs.World, spec prefabs.PuzzleSpec, board *puzzle.Board, layout puzzle.Layout, img *ebiten.Image) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("puzzle: %w", err)
	}
	if board == nil {
		return 0, fmt.Errorf("puzzle: nil board")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PuzzleComponent.Kind(), &component.Puzzle{
		Board:    board,
		Layout:   layout,
		ImageKey: spec.Image,
		Caption:  spec.Caption,
		Image:    img,
	}); err != nil {
		return 0, fmt.Errorf("puzzle: add puzzle: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPuzzle}); err != nil {
		return 0, fmt.Errorf("puzzle: add layer: %w", err)
	}
	return e, nil
}

// NewPointer creates the entity input is written to.
func NewPointer(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		return 0, fmt.Errorf("pointer: add pointer: %w", err)
	}
	return e, nil
}
