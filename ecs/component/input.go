package component

// Pointer stores the per-tick mouse state in logical screen units.
type Pointer struct {
	X       int
	Y       int
	Clicked bool
	// CopyPressed is set on the tick the copy-caption key goes down.
	CopyPressed bool
}

var PointerComponent = NewComponent[Pointer]()
