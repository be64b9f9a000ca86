package system

import (
	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

// CameraSystem scrolls the camera toward the player, kept inside the level
// bounds.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)
	camT, ok := ecs.Get(w, camEntity, component.TransformComponent)
	if !ok {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}

	var bounds *component.LevelBounds
	if be, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, be, component.LevelBoundsComponent)
	}

	camT.X, camT.Y = followCamera(cam, bounds, camT.X, camT.Y, target.X, target.Y)
	cam.Following = true
}

// followCamera returns the next scroll position that brings the target
// (in world units) toward the view center. The first call snaps.
func followCamera(cam *component.Camera, bounds *component.LevelBounds, scrollX, scrollY, targetX, targetY float64) (float64, float64) {
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	viewW := cam.ViewWidth / zoom
	viewH := cam.ViewHeight / zoom

	wantX := targetX - viewW/2
	wantY := targetY - viewH/2

	if cam.Following {
		wantX = common.Lerp(scrollX, wantX, cam.LerpX)
		wantY = common.Lerp(scrollY, wantY, cam.LerpY)
	}

	if bounds != nil {
		wantX = common.Clamp(wantX, 0, bounds.Width-viewW)
		wantY = common.Clamp(wantY, 0, bounds.Height-viewH)
	}
	return wantX, wantY
}
