package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkingAnim() *component.Animation {
	return &component.Animation{Defs: map[string]component.AnimationDef{
		"walking": {Name: "walking", Frames: []int{0, 1, 2}, FPS: 12, Yoyo: true, Repeat: -1},
		"once":    {Name: "once", Frames: []int{4, 5}, FPS: 4},
	}}
}

func TestYoyoLoopSequence(t *testing.T) {
	anim := walkingAnim()
	require.True(t, anim.Play("walking"))
	def := anim.Defs["walking"]

	var got []int
	for i := 0; i < 8; i++ {
		stepAnimation(anim, def)
		frame, ok := anim.CurrentFrame()
		require.True(t, ok)
		got = append(got, frame)
	}
	assert.Equal(t, []int{1, 2, 1, 0, 1, 2, 1, 0}, got)
	assert.True(t, anim.Playing)
}

func TestAnimationWithoutRepeatStops(t *testing.T) {
	anim := walkingAnim()
	require.True(t, anim.Play("once"))

	advanceAnimation(anim, 250)
	frame, _ := anim.CurrentFrame()
	assert.Equal(t, 5, frame)
	assert.True(t, anim.Playing)

	advanceAnimation(anim, 250)
	assert.False(t, anim.Playing)
	frame, _ = anim.CurrentFrame()
	assert.Equal(t, 5, frame, "stopped animations hold their last frame")
}

func TestPlayKeepsRunningAnimation(t *testing.T) {
	anim := walkingAnim()
	anim.Play("walking")
	stepAnimation(anim, anim.Defs["walking"])
	anim.Play("walking")
	assert.Equal(t, 1, anim.Cursor)
	assert.False(t, anim.Play("missing"))
}

func TestAnimationSystemUpdatesSprite(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	anim := walkingAnim()
	sprite := &component.Sprite{Frames: make([]*ebiten.Image, 6), Frame: 3}
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent, anim))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent, sprite))

	sys := NewAnimationSystem()
	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	assert.Equal(t, 3, sprite.Frame, "idle sprites keep their frame")

	anim.Play("walking")
	// 12 fps advances one frame every 5 ticks at 60 TPS.
	for i := 0; i < 7; i++ {
		sys.Update(w)
	}
	assert.Equal(t, 1, sprite.Frame)
}
