package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/assets"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/levels"
)

// NewPlatform creates a static platform with its top-left corner at p.X,p.Y.
// A platform of more than one tile repeats its texture to the right.
// Elasticity sets how much a barrel bounces on it.
func NewPlatform(w *ecs.World, p levels.Platform, elasticity float64) (ecs.Entity, error) {
	img, err := assets.Texture(p.Key)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	tileW, tileH := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlatformTagComponent, &component.PlatformTag{}); err != nil {
		return 0, fmt.Errorf("platform: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: p.X, Y: p.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("platform: add sprite: %w", err)
	}
	if p.NumTiles > 1 {
		if err := ecs.Add(w, e, component.TileSpriteComponent, &component.TileSprite{Count: p.NumTiles}); err != nil {
			return 0, fmt.Errorf("platform: add tile sprite: %w", err)
		}
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerPlatforms}); err != nil {
		return 0, fmt.Errorf("platform: add render layer: %w", err)
	}

	tiles := max(p.NumTiles, 1)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:        tileW * float64(tiles),
		Height:       tileH,
		Static:       true,
		AlignTopLeft: true,
		Elasticity:   elasticity,
	}); err != nil {
		return 0, fmt.Errorf("platform: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.CategoryPlatform,
		Mask:     component.CategoryPlayer | component.CategoryBarrel | component.CategoryGoal,
	}); err != nil {
		return 0, fmt.Errorf("platform: add collision layer: %w", err)
	}

	return e, nil
}
