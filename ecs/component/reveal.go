package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfall/snow"
)

// Reveal is the captioned photo that replaces a solved puzzle.
type Reveal struct {
	ImageKey string
	Caption  string
	Bounds   image.Rectangle
	Image    *ebiten.Image
	Opacity  snow.Tween
	// Loaded is set once the image is available and the puzzle has been
	// replaced. Failed is set when loading failed; the reveal then never
	// shows.
	Loaded bool
	Failed bool
}

var RevealComponent = NewComponent[Reveal]()
