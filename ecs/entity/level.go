package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/levels"
	"github.com/milk9111/barrelclimb/prefabs"
)

// LoadLevelToWorld builds a full scene from a level descriptor: bounds,
// platforms, fires, goal, player, camera, HUD, touch controls and the
// scene state entity. The descriptor is only read.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, set *prefabs.Set) error {
	bounds := w.CreateEntity()
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent, &component.LevelBounds{
		Width:  lvl.World.Width,
		Height: lvl.World.Height,
	}); err != nil {
		return fmt.Errorf("level: add bounds: %w", err)
	}

	for i, p := range lvl.Platforms {
		if _, err := NewPlatform(w, p, set.Barrel.BounceY); err != nil {
			return fmt.Errorf("level: platform %d: %w", i, err)
		}
	}
	for i, f := range lvl.Fires {
		if _, err := NewFire(w, set.Fire, f.X, f.Y); err != nil {
			return fmt.Errorf("level: fire %d: %w", i, err)
		}
	}
	if _, err := NewGoal(w, set.Goal, lvl.Goal.X, lvl.Goal.Y); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if _, err := NewPlayer(w, set.Player); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if _, err := NewCamera(w, set.Game); err != nil {
		return fmt.Errorf("level: %w", err)
	}

	screenW, screenH := float64(set.Game.Width), float64(set.Game.Height)
	if _, err := NewHUD(w, set.Game.HUD, screenH); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if _, err := NewTouchControls(w, set.Game.Touch, screenW, screenH); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if _, err := NewScene(w, lvl.Spawner, set.Barrel); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	return nil
}
