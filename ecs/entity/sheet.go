package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/barrelclimb/assets"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

func loadSheet(spec prefabs.SheetSpec) ([]*ebiten.Image, error) {
	sheet, err := assets.LoadImage(spec.Image)
	if err != nil {
		return nil, fmt.Errorf("load sheet: %w", err)
	}
	frames := assets.Frames(sheet, spec.FrameW, spec.FrameH, spec.Margin, spec.Spacing)
	if len(frames) == 0 {
		return nil, fmt.Errorf("sheet %s has no %dx%d frames", spec.Image, spec.FrameW, spec.FrameH)
	}
	return frames, nil
}

func animationDefs(specs map[string]prefabs.AnimationSpec) map[string]component.AnimationDef {
	defs := make(map[string]component.AnimationDef, len(specs))
	for name, s := range specs {
		defs[name] = component.AnimationDef{
			Name:   name,
			Frames: append([]int(nil), s.Frames...),
			FPS:    s.FPS,
			Yoyo:   s.Yoyo,
			Repeat: s.Repeat,
		}
	}
	return defs
}
