package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

// HazardSystem restarts the scene when the player overlaps a fire, an active
// barrel or the goal.
type HazardSystem struct {
	fadeMs float64
}

func NewHazardSystem(fadeMs float64) *HazardSystem {
	return &HazardSystem{fadeMs: fadeMs}
}

type hazardAABB struct {
	x float64
	y float64
	w float64
	h float64
}

func overlapsAABB(a, b hazardAABB) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y
}

func physicsBodyAABB(t *component.Transform, b *component.PhysicsBody) (hazardAABB, bool) {
	if t == nil || b == nil || b.Width <= 0 || b.Height <= 0 {
		return hazardAABB{}, false
	}
	if b.AlignTopLeft {
		return hazardAABB{x: t.X, y: t.Y, w: b.Width, h: b.Height}, true
	}
	return hazardAABB{x: t.X - b.Width/2, y: t.Y - b.Height/2, w: b.Width, h: b.Height}, true
}

func hazardBounds(h *component.Hazard, t *component.Transform) (hazardAABB, bool) {
	if h == nil || t == nil || h.Disabled || h.Width <= 0 || h.Height <= 0 {
		return hazardAABB{}, false
	}
	return hazardAABB{x: t.X + h.OffsetX, y: t.Y + h.OffsetY, w: h.Width, h: h.Height}, true
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, tok := ecs.Get(w, player, component.TransformComponent)
	body, bok := ecs.Get(w, player, component.PhysicsBodyComponent)
	if !tok || !bok {
		return
	}
	playerBox, ok := physicsBodyAABB(t, body)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.HazardComponent, component.TransformComponent, func(e ecs.Entity, h *component.Hazard, ht *component.Transform) {
		if e == player {
			return
		}
		b, ok := hazardBounds(h, ht)
		if !ok || !overlapsAABB(playerBox, b) {
			return
		}
		RequestRestart(w, fmt.Sprintf("touched %s", h.Kind), s.fadeMs)
	})
}

// RequestRestart starts the fade that ends in a scene reload. It reports
// false when a restart is already underway.
func RequestRestart(w *ecs.World, reason string, fadeMs float64) bool {
	scene, ok := w.First(component.RestartGuardComponent.Kind())
	if !ok {
		scene = w.CreateEntity()
		_ = ecs.Add(w, scene, component.RestartGuardComponent, &component.RestartGuard{})
	}
	guard, _ := ecs.Get(w, scene, component.RestartGuardComponent)
	if guard.Restarting {
		return false
	}
	guard.Restarting = true
	guard.Reason = reason

	_ = ecs.Add(w, scene, component.FadeComponent, &component.Fade{
		Phase:      component.FadeOut,
		DurationMs: fadeMs,
		Reason:     reason,
	})
	w.Events().Push(ecs.Event{Kind: ecs.EventRestart, Source: scene, Detail: reason})
	return true
}

// DrawHazardDebug renders hazard bounds for debug visualization.
func DrawHazardDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	camX, camY, zoom := debugCameraTransform(w)
	ecs.ForEach2(w, component.HazardComponent, component.TransformComponent, func(e ecs.Entity, h *component.Hazard, t *component.Transform) {
		b, ok := hazardBounds(h, t)
		if !ok {
			return
		}
		x := (b.x - camX) * zoom
		y := (b.y - camY) * zoom
		wdt := b.w * zoom
		hgt := b.h * zoom
		vector.FillRect(screen, float32(x), float32(y), float32(wdt), float32(hgt), color.RGBA{R: 255, G: 0, B: 0, A: 48}, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(wdt), float32(hgt), 1.0, color.RGBA{R: 255, G: 0, B: 0, A: 200}, false)
	})
}

func debugCameraTransform(w *ecs.World) (float64, float64, float64) {
	camX, camY := 0.0, 0.0
	zoom := 1.0
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return camX, camY, zoom
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}
	return camX, camY, zoom
}
