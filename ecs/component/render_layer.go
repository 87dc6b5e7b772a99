package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

const (
	LayerPuzzle    = 0
	LayerCollector = 4
	LayerSnow      = 5
)
