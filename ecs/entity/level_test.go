package entity

import (
	"testing"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/levels"
	"github.com/milk9111/barrelclimb/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefaultScene(t *testing.T) (*ecs.World, *levels.Level) {
	t.Helper()
	lvl, err := levels.Load("")
	require.NoError(t, err)
	set, err := prefabs.LoadSet()
	require.NoError(t, err)

	w := ecs.NewWorld()
	require.NoError(t, LoadLevelToWorld(w, lvl, set))
	return w, lvl
}

func TestLoadLevelToWorld(t *testing.T) {
	w, lvl := loadDefaultScene(t)

	assert.Len(t, w.Query(component.PlatformTagComponent.Kind()), len(lvl.Platforms))
	assert.Len(t, w.Query(component.PlayerTagComponent.Kind()), 1)
	assert.Len(t, w.Query(component.GoalTagComponent.Kind()), 1)
	assert.Len(t, w.Query(component.CameraComponent.Kind()), 1)
	assert.Len(t, w.Query(component.SpawnerComponent.Kind()), 1)
	assert.Empty(t, w.Query(component.BarrelComponent.Kind()), "barrels are created by the spawner")

	fires := 0
	ecs.ForEach(w, component.HazardComponent, func(e ecs.Entity, h *component.Hazard) {
		if h.Kind == component.HazardFire {
			fires++
		}
	})
	assert.Equal(t, len(lvl.Fires), fires)

	be, ok := w.First(component.LevelBoundsComponent.Kind())
	require.True(t, ok)
	bounds, _ := ecs.Get(w, be, component.LevelBoundsComponent)
	assert.Equal(t, lvl.World.Width, bounds.Width)
	assert.Equal(t, lvl.World.Height, bounds.Height)

	se, _ := w.First(component.SpawnerComponent.Kind())
	sp, _ := ecs.Get(w, se, component.SpawnerComponent)
	assert.Equal(t, lvl.Spawner.Speed, sp.Speed)
	assert.Equal(t, lvl.Spawner.Lifespan, sp.LifespanMs)
	assert.False(t, sp.Armed)

	guard, ok := ecs.Get(w, se, component.RestartGuardComponent)
	require.True(t, ok)
	assert.False(t, guard.Restarting)
}

func TestPlatformTiles(t *testing.T) {
	w, lvl := loadDefaultScene(t)

	tiled := 0
	for _, p := range lvl.Platforms {
		if p.NumTiles > 1 {
			tiled++
		}
	}
	assert.Len(t, w.Query(component.TileSpriteComponent.Kind()), tiled)

	ecs.ForEach2(w, component.PlatformTagComponent, component.PhysicsBodyComponent, func(e ecs.Entity, _ *component.PlatformTag, body *component.PhysicsBody) {
		assert.True(t, body.Static)
		assert.True(t, body.AlignTopLeft)
	})
}

func TestLevelDescriptorIsNotMutated(t *testing.T) {
	lvl, err := levels.Load("")
	require.NoError(t, err)
	before := *lvl
	before.Platforms = append([]levels.Platform(nil), lvl.Platforms...)
	before.Fires = append([]levels.Point(nil), lvl.Fires...)

	set, err := prefabs.LoadSet()
	require.NoError(t, err)
	require.NoError(t, LoadLevelToWorld(ecs.NewWorld(), lvl, set))
	assert.Equal(t, before, *lvl)
}

func TestBarrelStartsPooled(t *testing.T) {
	set, err := prefabs.LoadSet()
	require.NoError(t, err)
	w := ecs.NewWorld()

	e, err := BarrelFactory(set.Barrel)(w)
	require.NoError(t, err)

	b, _ := ecs.Get(w, e, component.BarrelComponent)
	assert.False(t, b.Active)
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	assert.True(t, body.Disabled)
	h, _ := ecs.Get(w, e, component.HazardComponent)
	assert.True(t, h.Disabled)
	s, _ := ecs.Get(w, e, component.SpriteComponent)
	assert.True(t, s.Hidden)
}

func TestAnimationDefsCopiesFrames(t *testing.T) {
	specs := map[string]prefabs.AnimationSpec{
		"walking": {Frames: []int{0, 1, 2}, FPS: 12, Yoyo: true, Repeat: -1},
	}
	defs := animationDefs(specs)
	require.Contains(t, defs, "walking")
	assert.Equal(t, "walking", defs["walking"].Name)
	assert.True(t, defs["walking"].Yoyo)

	specs["walking"].Frames[0] = 9
	assert.Equal(t, []int{0, 1, 2}, defs["walking"].Frames)
}
