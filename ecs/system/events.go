package system

const (
	// EventSnowLanded carries a SnowLanded payload.
	EventSnowLanded = "snow_landed"
	// EventPuzzleSolved carries a PuzzleSolved payload.
	EventPuzzleSolved = "puzzle_solved"
)

// SnowLanded is published when a flake finishes its fall.
type SnowLanded struct {
	Size float64
}

// PuzzleSolved is published when a puzzle enters its solved state.
type PuzzleSolved struct {
	Caption string
	Forced  bool
}
