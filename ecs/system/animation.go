package system

import (
	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent, component.SpriteComponent, func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing {
			return
		}
		advanceAnimation(anim, common.FrameMs)
		if frame, ok := anim.CurrentFrame(); ok {
			sprite.SetFrame(frame)
		}
	})
}

// advanceAnimation moves the playback cursor forward by dtMs.
func advanceAnimation(anim *component.Animation, dtMs float64) {
	def, ok := anim.Defs[anim.Current]
	if !ok || len(def.Frames) == 0 || def.FPS <= 0 {
		return
	}
	if anim.Direction == 0 {
		anim.Direction = 1
	}

	frameMs := 1000 / def.FPS
	anim.ElapsedMs += dtMs
	for anim.Playing && anim.ElapsedMs >= frameMs {
		anim.ElapsedMs -= frameMs
		stepAnimation(anim, def)
	}
}

func stepAnimation(anim *component.Animation, def component.AnimationDef) {
	last := len(def.Frames) - 1
	next := anim.Cursor + anim.Direction
	if next >= 0 && next <= last {
		anim.Cursor = next
		return
	}

	if def.Yoyo && anim.Direction > 0 && last > 0 {
		anim.Direction = -1
		anim.Cursor = last - 1
		return
	}

	// One full play finished.
	if anim.Remaining == 0 {
		anim.Playing = false
		return
	}
	if anim.Remaining > 0 {
		anim.Remaining--
	}
	anim.Direction = 1
	if def.Yoyo && last > 0 {
		anim.Cursor = 1
	} else {
		anim.Cursor = 0
	}
}
