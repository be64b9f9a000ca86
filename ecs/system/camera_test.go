package system

import (
	"testing"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *component.Camera {
	return &component.Camera{Zoom: 1, LerpX: 0.12, LerpY: 0.12, ViewWidth: 360, ViewHeight: 640}
}

func TestFollowCamera(t *testing.T) {
	bounds := &component.LevelBounds{Width: 360, Height: 700}

	tests := []struct {
		name      string
		following bool
		bounds    *component.LevelBounds
		scrollY   float64
		targetY   float64
		wantX     float64
		wantY     float64
	}{
		{name: "first_update_snaps_and_clamps", bounds: bounds, targetY: 400, wantX: 0, wantY: 60},
		{name: "lerps_once_following", following: true, bounds: bounds, targetY: 330, wantX: 0, wantY: 1.2},
		{name: "clamps_top", bounds: bounds, targetY: 10, wantX: 0, wantY: 0},
		{name: "unbounded", targetY: 400, wantX: 0, wantY: 80},
		{name: "narrow_world_pins_left", bounds: &component.LevelBounds{Width: 200, Height: 700}, targetY: 400, wantX: 0, wantY: 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := testCamera()
			cam.Following = tc.following
			x, y := followCamera(cam, tc.bounds, 0, tc.scrollY, 180, tc.targetY)
			assert.InDelta(t, tc.wantX, x, 1e-9)
			assert.InDelta(t, tc.wantY, y, 1e-9)
		})
	}
}

func TestCameraSystemFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()

	bounds := w.CreateEntity()
	require.NoError(t, ecs.Add(w, bounds, component.LevelBoundsComponent, &component.LevelBounds{Width: 360, Height: 2000}))

	player := w.CreateEntity()
	pt := &component.Transform{X: 180, Y: 1000}
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent, pt))

	camEnt := w.CreateEntity()
	cam := testCamera()
	camT := &component.Transform{}
	require.NoError(t, ecs.Add(w, camEnt, component.CameraComponent, cam))
	require.NoError(t, ecs.Add(w, camEnt, component.TransformComponent, camT))

	sys := NewCameraSystem()
	sys.Update(w)
	assert.True(t, cam.Following)
	assert.Equal(t, 680.0, camT.Y)

	pt.Y = 1100
	sys.Update(w)
	assert.InDelta(t, 692.0, camT.Y, 1e-9)
}
