package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewCamera creates the scene camera. Its view covers the internal
// resolution of game.
func NewCamera(w *ecs.World, game *prefabs.GameSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := game.Camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent, &component.Camera{
		Zoom:       zoom,
		LerpX:      game.Camera.LerpX,
		LerpY:      game.Camera.LerpY,
		ViewWidth:  float64(game.Width),
		ViewHeight: float64(game.Height),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
