package system

import (
	"testing"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLDestroysEntity(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TTLComponent, &component.TTL{Millis: 40}))

	sys := NewTTLSystem()
	sys.Update(w)
	sys.Update(w)
	assert.True(t, w.IsAlive(e))
	sys.Update(w)
	assert.False(t, w.IsAlive(e))
}

func TestTTLDeactivatesPooledEntity(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	barrel := &component.Barrel{Active: true}
	sprite := &component.Sprite{}
	body := &component.PhysicsBody{Width: 22, Height: 20, VelocityX: 80}
	hazard := &component.Hazard{Kind: component.HazardBarrel, Width: 22, Height: 20}
	require.NoError(t, ecs.Add(w, e, component.BarrelComponent, barrel))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent, sprite))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, body))
	require.NoError(t, ecs.Add(w, e, component.HazardComponent, hazard))
	require.NoError(t, ecs.Add(w, e, component.TTLComponent, &component.TTL{Millis: 0, Action: component.TTLDeactivate}))

	NewTTLSystem().Update(w)

	assert.True(t, w.IsAlive(e))
	assert.False(t, barrel.Active)
	assert.True(t, sprite.Hidden)
	assert.True(t, body.Disabled)
	assert.Zero(t, body.VelocityX)
	assert.True(t, hazard.Disabled)
	assert.False(t, ecs.Has(w, e, component.TTLComponent))

	evts := w.Events().Drain()
	require.Len(t, evts, 1)
	assert.Equal(t, ecs.EventDespawn, evts[0].Kind)
}
