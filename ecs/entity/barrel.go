package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/assets"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewBarrel creates an inactive, hidden barrel for the spawner's pool.
func NewBarrel(w *ecs.World, spec *prefabs.BarrelSpec) (ecs.Entity, error) {
	img, err := assets.LoadImage(spec.Image)
	if err != nil {
		return 0, fmt.Errorf("barrel: load image %s: %w", spec.Image, err)
	}
	width, height := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BarrelComponent, &component.Barrel{}); err != nil {
		return 0, fmt.Errorf("barrel: add barrel: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("barrel: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Image:   img,
		OriginX: width / 2,
		OriginY: height / 2,
		Hidden:  true,
	}); err != nil {
		return 0, fmt.Errorf("barrel: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerBarrels}); err != nil {
		return 0, fmt.Errorf("barrel: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:      width,
		Height:     height,
		Mass:       1,
		Elasticity: spec.BounceX,
		Disabled:   true,
	}); err != nil {
		return 0, fmt.Errorf("barrel: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.CategoryBarrel,
		Mask:     component.CategoryPlatform | component.CategoryBounds,
	}); err != nil {
		return 0, fmt.Errorf("barrel: add collision layer: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent, &component.Hazard{
		Kind:     component.HazardBarrel,
		Width:    width,
		Height:   height,
		OffsetX:  -width / 2,
		OffsetY:  -height / 2,
		Disabled: true,
	}); err != nil {
		return 0, fmt.Errorf("barrel: add hazard: %w", err)
	}

	return e, nil
}

// BarrelFactory binds spec so the spawner can grow its pool.
func BarrelFactory(spec *prefabs.BarrelSpec) func(w *ecs.World) (ecs.Entity, error) {
	return func(w *ecs.World) (ecs.Entity, error) {
		return NewBarrel(w, spec)
	}
}
