package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewPlayer spawns the player centered on spec.Spawn.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	frames, err := loadSheet(spec.Sheet)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X: spec.Spawn.X, Y: spec.Spawn.Y, ScaleX: 1, ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	fw, fh := float64(spec.Sheet.FrameW), float64(spec.Sheet.FrameH)
	sprite := &component.Sprite{Frames: frames, OriginX: fw / 2, OriginY: fh / 2}
	sprite.SetFrame(spec.IdleFrame)
	if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent, &component.Animation{
		Defs: animationDefs(spec.Animations),
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerPlayer}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:  fw,
		Height: fh,
		Mass:   1,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.CategoryPlayer,
		Mask:     component.CategoryPlatform | component.CategoryBounds,
	}); err != nil {
		return 0, fmt.Errorf("player: add collision layer: %w", err)
	}
	if err := ecs.Add(w, e, component.GroundContactComponent, &component.GroundContact{}); err != nil {
		return 0, fmt.Errorf("player: add ground contact: %w", err)
	}

	if err := ecs.Add(w, e, component.PlayerComponent, &component.Player{
		MoveSpeed:     spec.MoveSpeed,
		JumpSpeed:     spec.JumpVelocity,
		MaxJumps:      spec.MaxJumps,
		CoyoteMs:      spec.CoyoteMs,
		JumpBufferMs:  spec.JumpBufferMs,
		StickDeadzone: spec.StickDeadzone,
		IdleFrame:     spec.IdleFrame,
		JumpFrame:     spec.JumpFrame,
		WalkAnimation: spec.WalkAnimation,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.JumpStateComponent, &component.JumpState{JumpsRemaining: spec.MaxJumps}); err != nil {
		return 0, fmt.Errorf("player: add jump state: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	return e, nil
}
