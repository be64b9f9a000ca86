package system

import (
	"testing"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addBounds(t *testing.T, w *ecs.World, width, height float64) {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.LevelBoundsComponent, &component.LevelBounds{Width: width, Height: height}))
}

func addPlatform(t *testing.T, w *ecs.World, x, y, width, height, elasticity float64) {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width: width, Height: height, Static: true, AlignTopLeft: true, Elasticity: elasticity,
	}))
	require.NoError(t, ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.CategoryPlatform,
		Mask:     component.CategoryPlayer | component.CategoryBarrel | component.CategoryGoal,
	}))
}

func TestPlayerLandsAndIsGrounded(t *testing.T) {
	w := ecs.NewWorld()
	addBounds(t, w, 360, 700)
	addPlatform(t, w, 0, 600, 360, 30, 0.1)

	player := w.CreateEntity()
	tr := &component.Transform{X: 180, Y: 500}
	gc := &component.GroundContact{}
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent, tr))
	require.NoError(t, ecs.Add(w, player, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 28, Height: 30, Mass: 1}))
	require.NoError(t, ecs.Add(w, player, component.GroundContactComponent, gc))
	require.NoError(t, ecs.Add(w, player, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.CategoryPlayer,
		Mask:     component.CategoryPlatform | component.CategoryBounds,
	}))

	ps := NewPhysicsSystem(1000)
	ps.Update(w)
	assert.False(t, gc.Grounded)
	assert.Greater(t, tr.Y, 500.0, "gravity pulls the player down")

	for i := 0; i < 120; i++ {
		ps.Update(w)
	}
	assert.True(t, gc.Grounded)
	assert.InDelta(t, 585, tr.Y, 2, "player rests on the platform top")
}

func TestBarrelBouncesOffSideBounds(t *testing.T) {
	w := ecs.NewWorld()
	addBounds(t, w, 200, 200)

	barrel := w.CreateEntity()
	body := &component.PhysicsBody{Width: 22, Height: 20, Mass: 1, Elasticity: 1, VelocityX: 200}
	require.NoError(t, ecs.Add(w, barrel, component.TransformComponent, &component.Transform{X: 150, Y: 100}))
	require.NoError(t, ecs.Add(w, barrel, component.PhysicsBodyComponent, body))
	require.NoError(t, ecs.Add(w, barrel, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.CategoryBarrel,
		Mask:     component.CategoryPlatform | component.CategoryBounds,
	}))

	ps := NewPhysicsSystem(0)
	ps.SetBoundsElasticity(1, 0.1)
	for i := 0; i < 30; i++ {
		ps.Update(w)
	}
	vx, _ := body.Velocity()
	assert.Less(t, vx, 0.0, "barrel rolls back after hitting the right edge")
	assert.InDelta(t, 200, -vx, 20)
}

func TestDisabledBodyLeavesSpace(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	tr := &component.Transform{X: 50, Y: 50}
	body := &component.PhysicsBody{Width: 10, Height: 10, Mass: 1}
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, tr))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, body))

	ps := NewPhysicsSystem(1000)
	ps.Update(w)
	require.NotNil(t, body.Body)

	body.Disabled = true
	ps.Update(w)
	y := tr.Y
	for i := 0; i < 10; i++ {
		ps.Update(w)
	}
	assert.Equal(t, y, tr.Y, "disabled bodies do not move")

	tr.X, tr.Y = 10, 10
	body.Disabled = false
	body.VelocityX, body.VelocityY = 60, 0
	ps.Update(w)
	assert.InDelta(t, 11, tr.X, 0.1)
	assert.Greater(t, tr.Y, 10.0)
}

func TestDestroyedEntityIsRemovedFromSpace(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{X: 50, Y: 50}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 10, Height: 10}))

	ps := NewPhysicsSystem(1000)
	ps.Update(w)
	require.Len(t, ps.entities, 1)

	w.DestroyEntity(e)
	ps.Update(w)
	assert.Empty(t, ps.entities)
}
