package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/levels"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewScene creates the entity holding per-scene state: the restart guard
// and the barrel spawner.
func NewScene(w *ecs.World, spawner levels.Spawner, barrel *prefabs.BarrelSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SceneTagComponent, &component.SceneTag{}); err != nil {
		return 0, fmt.Errorf("scene: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.RestartGuardComponent, &component.RestartGuard{}); err != nil {
		return 0, fmt.Errorf("scene: add restart guard: %w", err)
	}
	if err := ecs.Add(w, e, component.SpawnerComponent, &component.Spawner{
		Speed:      spawner.Speed,
		LifespanMs: spawner.Lifespan,
		MinDelayMs: barrel.MinDelayMs,
		MaxDelayMs: barrel.MaxDelayMs,
		BounceX:    barrel.BounceX,
		BounceY:    barrel.BounceY,
	}); err != nil {
		return 0, fmt.Errorf("scene: add spawner: %w", err)
	}
	return e, nil
}
