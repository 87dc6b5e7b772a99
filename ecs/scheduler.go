package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// Interactive is implemented by systems driven by player input.
// UpdatePaused skips them.
type Interactive interface {
	Interactive() bool
}

// RenderSystem draws a world each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

type Scheduler struct {
	systems []System
	renders []RenderSystem
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends a system to the update order. Systems that also implement
// RenderSystem are drawn in the same order.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	if rs, ok := system.(RenderSystem); ok {
		s.renders = append(s.renders, rs)
	}
}

// AddRender appends a draw-only system.
func (s *Scheduler) AddRender(rs RenderSystem) {
	if rs == nil {
		return
	}
	s.renders = append(s.renders, rs)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// UpdatePaused runs every system except the interactive ones, so the scene
// keeps animating under an overlay.
func (s *Scheduler) UpdatePaused(w *World) {
	for _, system := range s.systems {
		if in, ok := system.(Interactive); ok && in.Interactive() {
			continue
		}
		system.Update(w)
	}
}

func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, rs := range s.renders {
		rs.Draw(w, screen)
	}
}
