package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Renderer draws ECS entities each frame.
type Renderer interface {
	Draw(w *World, screen *ebiten.Image)
}

// RendererFunc adapts a plain draw function to Renderer.
type RendererFunc func(w *World, screen *ebiten.Image)

func (f RendererFunc) Draw(w *World, screen *ebiten.Image) {
	f(w, screen)
}

// AddRenderer appends a renderer; renderers draw in registration order.
func (s *Scheduler) AddRenderer(r Renderer) {
	if r == nil {
		return
	}
	s.renderers = append(s.renderers, r)
}

// Draw calls all renderers. Systems that also implement Renderer are not
// drawn unless registered with AddRenderer.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, r := range s.renderers {
		r.Draw(w, screen)
	}
}
