package entity

import (
	"fmt"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewTouchControls lays out the virtual stick in the bottom-left corner and
// the jump button in the bottom-right one. They stay disabled until the
// first touch.
func NewTouchControls(w *ecs.World, spec prefabs.TouchSpec, screenW, screenH float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TouchControlsComponent, &component.TouchControls{
		Stick: component.TouchStick{
			CenterX: spec.Inset,
			CenterY: screenH - spec.Inset,
			Radius:  spec.StickRadius,
		},
		KnobRadius: spec.KnobRadius,
		JumpRadius: spec.JumpRadius,
		JumpX:      screenW - spec.Inset,
		JumpY:      screenH - spec.Inset,
		Inset:      spec.Inset,
	}); err != nil {
		return 0, fmt.Errorf("touch: add controls: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("touch: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent, &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("touch: add screen space: %w", err)
	}
	// Jump button press feedback; restarted on every tap.
	if err := ecs.Add(w, e, component.TweenComponent, &component.Tween{
		Property:   component.TweenScale,
		From:       1,
		To:         spec.PressScale,
		DurationMs: spec.PressMs,
		Ease:       component.EaseLinear,
		Yoyo:       true,
		Done:       true,
	}); err != nil {
		return 0, fmt.Errorf("touch: add tween: %w", err)
	}
	return e, nil
}
