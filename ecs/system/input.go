package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
)

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Interactive() bool { return true }

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		x, y = ebiten.TouchPosition(touches[0])
		clicked = true
	}
	copyPressed := inpututil.IsKeyJustPressed(ebiten.KeyC)

	ecs.ForEach(w, component.PointerComponent.Kind(), func(_ ecs.Entity, p *component.Pointer) {
		p.X = x
		p.Y = y
		p.Clicked = clicked
		p.CopyPressed = copyPressed
	})
}

// pointer returns the first pointer in w.
func pointer(w *ecs.World) (*component.Pointer, bool) {
	e, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.PointerComponent.Kind())
}
