package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewFire places a burning fire with its top-left corner at x,y. Fires
// ignore gravity and never move.
func NewFire(w *ecs.World, spec *prefabs.FireSpec, x, y float64) (ecs.Entity, error) {
	frames, err := loadSheet(spec.Sheet)
	if err != nil {
		return 0, fmt.Errorf("fire: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("fire: add transform: %w", err)
	}
	sprite := &component.Sprite{Frames: frames}
	sprite.SetFrame(0)
	if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
		return 0, fmt.Errorf("fire: add sprite: %w", err)
	}

	anim := &component.Animation{Defs: animationDefs(spec.Animations)}
	anim.Play(spec.Animation)
	if err := ecs.Add(w, e, component.AnimationComponent, anim); err != nil {
		return 0, fmt.Errorf("fire: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerHazards}); err != nil {
		return 0, fmt.Errorf("fire: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent, &component.Hazard{
		Kind:   component.HazardFire,
		Width:  float64(spec.Sheet.FrameW),
		Height: float64(spec.Sheet.FrameH),
	}); err != nil {
		return 0, fmt.Errorf("fire: add hazard: %w", err)
	}

	return e, nil
}
