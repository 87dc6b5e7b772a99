package system

import (
	"image"
	"log"

	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
)

// CaptionCopySystem copies the caption of the revealed photo under the
// pointer when the copy key is pressed.
type CaptionCopySystem struct {
	write func(text string) error
}

func NewCaptionCopySystem(write func(text string) error) *CaptionCopySystem {
	return &CaptionCopySystem{write: write}
}

func (s *CaptionCopySystem) Interactive() bool { return true }

func (s *CaptionCopySystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.write == nil {
		return
	}
	ptr, ok := pointer(w)
	if !ok || !ptr.CopyPressed {
		return
	}
	at := image.Pt(ptr.X, ptr.Y)

	ecs.ForEach(w, component.RevealComponent.Kind(), func(_ ecs.Entity, r *component.Reveal) {
		if !r.Loaded || !at.In(r.Bounds) {
			return
		}
		if err := s.write(r.Caption); err != nil {
			log.Printf("clipboard: copy caption: %v", err)
		}
	})
}
