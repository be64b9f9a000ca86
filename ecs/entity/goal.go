package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/assets"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewGoal drops the goal centered on x,y. It falls onto the platforms and
// restarts the level when the player reaches it.
func NewGoal(w *ecs.World, spec *prefabs.GoalSpec, x, y float64) (ecs.Entity, error) {
	img, err := assets.LoadImage(spec.Image)
	if err != nil {
		return 0, fmt.Errorf("goal: load image %s: %w", spec.Image, err)
	}
	width, height := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GoalTagComponent, &component.GoalTag{}); err != nil {
		return 0, fmt.Errorf("goal: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("goal: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Image:   img,
		OriginX: width / 2,
		OriginY: height / 2,
	}); err != nil {
		return 0, fmt.Errorf("goal: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerGoal}); err != nil {
		return 0, fmt.Errorf("goal: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:  width,
		Height: height,
		Mass:   spec.Mass,
	}); err != nil {
		return 0, fmt.Errorf("goal: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.CategoryGoal,
		Mask:     component.CategoryPlatform,
	}); err != nil {
		return 0, fmt.Errorf("goal: add collision layer: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent, &component.Hazard{
		Kind:    component.HazardGoal,
		Width:   width,
		Height:  height,
		OffsetX: -width / 2,
		OffsetY: -height / 2,
	}); err != nil {
		return 0, fmt.Errorf("goal: add hazard: %w", err)
	}

	return e, nil
}
