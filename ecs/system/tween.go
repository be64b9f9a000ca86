package system

import (
	"math"

	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

// TweenSystem advances tweens and writes their value to the tweened
// property of the same entity.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (ts *TweenSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.TweenComponent, func(e ecs.Entity, tw *component.Tween) {
		if tw.Done {
			return
		}
		tw.ElapsedMs += common.FrameMs
		value, done := tweenValue(tw)
		tw.Done = done

		switch tw.Property {
		case component.TweenAlpha:
			if text, ok := ecs.Get(w, e, component.TextComponent); ok {
				text.Alpha = value
			}
		case component.TweenScale:
			if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
				t.ScaleX = value
				t.ScaleY = value
			}
		}
	})
}

// tweenValue evaluates tw at its elapsed time and reports whether it has
// finished.
func tweenValue(tw *component.Tween) (float64, bool) {
	active := tw.ElapsedMs - tw.DelayMs
	if active <= 0 {
		return tw.From, false
	}

	total := tw.DurationMs
	if tw.Yoyo {
		total *= 2
	}
	if tw.DurationMs <= 0 || active >= total {
		if tw.Yoyo {
			return tw.From, true
		}
		return tw.To, true
	}

	p := active / tw.DurationMs
	if p > 1 {
		p = 2 - p
	}
	return common.Lerp(tw.From, tw.To, ease(tw.Ease, p)), false
}

func ease(e component.Ease, t float64) float64 {
	switch e {
	case component.EaseSineInOut:
		return 0.5 * (1 - math.Cos(math.Pi*t))
	default:
		return t
	}
}
