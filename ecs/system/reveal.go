package system

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
)

// RevealFadeMS is how long a reveal takes to fade in once its photo loads.
const RevealFadeMS = 1000.0

// ImageLoader resolves an image key to an image.
type ImageLoader func(key string) (*ebiten.Image, error)

// RevealSystem loads the photo for each pending reveal. When it arrives the
// puzzle grid is removed from the entity in the same step and the photo
// starts fading in. A photo that fails to load leaves the puzzle shown as
// solved for good.
type RevealSystem struct {
	load ImageLoader
}

func NewRevealSystem(load ImageLoader) *RevealSystem {
	return &RevealSystem{load: load}
}

func (s *RevealSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.load == nil {
		return
	}

	ecs.ForEach(w, component.RevealComponent.Kind(), func(e ecs.Entity, r *component.Reveal) {
		if r.Loaded || r.Failed {
			return
		}

		img, err := s.load(r.ImageKey)
		if err != nil {
			r.Failed = true
			log.Printf("reveal: load %q: %v", r.ImageKey, err)
			return
		}

		r.Image = img
		r.Bounds = photoBounds(r.Bounds, img)
		r.Loaded = true
		ecs.Remove(w, e, component.PuzzleComponent.Kind())
		r.Opacity.Retarget(1)
	})
}

// photoBounds keeps the puzzle's top-left and width and takes the height
// from the image's aspect ratio.
func photoBounds(area image.Rectangle, img *ebiten.Image) image.Rectangle {
	if img == nil {
		return area
	}
	b := img.Bounds()
	if b.Dx() == 0 {
		return area
	}
	h := area.Dx() * b.Dy() / b.Dx()
	return image.Rect(area.Min.X, area.Min.Y, area.Max.X, area.Min.Y+h)
}
