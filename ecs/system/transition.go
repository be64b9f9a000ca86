package system

import (
	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

// FadeSystem advances the restart fade and, once the screen is black, spawns
// a one-shot ReloadRequest for the game loop.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem { return &FadeSystem{} }

func (fs *FadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.FadeComponent, func(e ecs.Entity, fade *component.Fade) {
		if fade.Phase != component.FadeOut {
			return
		}
		fade.ElapsedMs += common.FrameMs
		if fade.DurationMs <= 0 {
			fade.Alpha = 1
		} else {
			fade.Alpha = common.Clamp(fade.ElapsedMs/fade.DurationMs, 0, 1)
		}
		if fade.Alpha < 1 {
			return
		}
		fade.Phase = component.FadeDone
		req := w.CreateEntity()
		_ = ecs.Add(w, req, component.ReloadRequestComponent, &component.ReloadRequest{Reason: fade.Reason})
	})
}
