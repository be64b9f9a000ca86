package system

import (
	"testing"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnRig struct {
	w       *ecs.World
	sys     *SpawnerSystem
	spawner *component.Spawner
	goal    *component.Transform
	created int
	delays  int
}

func newSpawnRig(t *testing.T, delayMs float64) *spawnRig {
	t.Helper()
	r := &spawnRig{w: ecs.NewWorld()}

	goal := r.w.CreateEntity()
	r.goal = &component.Transform{X: 40, Y: 80}
	require.NoError(t, ecs.Add(r.w, goal, component.GoalTagComponent, &component.GoalTag{}))
	require.NoError(t, ecs.Add(r.w, goal, component.TransformComponent, r.goal))

	scene := r.w.CreateEntity()
	r.spawner = &component.Spawner{
		Speed:      80,
		LifespanMs: 10000,
		MinDelayMs: 100,
		MaxDelayMs: 5000,
		BounceX:    1,
		BounceY:    0.1,
	}
	require.NoError(t, ecs.Add(r.w, scene, component.SpawnerComponent, r.spawner))

	delay := func(minMs, maxMs float64) float64 {
		r.delays++
		return delayMs
	}
	r.sys = NewSpawnerSystem(delay, r.newBarrel)
	return r
}

func (r *spawnRig) newBarrel(w *ecs.World) (ecs.Entity, error) {
	r.created++
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.BarrelComponent, &component.Barrel{}); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Hidden: true})
	_ = ecs.Add(w, e, component.HazardComponent, &component.Hazard{Kind: component.HazardBarrel, Width: 22, Height: 20, Disabled: true})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 22, Height: 20, Disabled: true})
	return e, nil
}

func (r *spawnRig) run(frames int) {
	for i := 0; i < frames; i++ {
		r.sys.Update(r.w)
	}
}

func (r *spawnRig) spawnEvents() []ecs.Event {
	var out []ecs.Event
	for _, evt := range r.w.Events().Drain() {
		if evt.Kind == ecs.EventSpawn {
			out = append(out, evt)
		}
	}
	return out
}

func TestSpawnerWaitsForDelay(t *testing.T) {
	r := newSpawnRig(t, 40)

	r.run(1)
	assert.True(t, r.spawner.Armed)
	assert.Equal(t, 40.0, r.spawner.TimerMs)

	r.run(2)
	assert.Zero(t, r.created)

	r.run(1)
	require.Equal(t, 1, r.created)
	assert.Len(t, r.spawnEvents(), 1)
}

func TestSpawnerZeroDelayFiresNextTick(t *testing.T) {
	r := newSpawnRig(t, 0)
	r.run(1)
	assert.Zero(t, r.created)
	r.run(1)
	assert.Equal(t, 1, r.created)
}

func TestSpawnedBarrelRollsFromGoal(t *testing.T) {
	r := newSpawnRig(t, 0)
	r.run(2)
	evts := r.spawnEvents()
	require.Len(t, evts, 1)
	e := evts[0].Source

	barrel, ok := ecs.Get(r.w, e, component.BarrelComponent)
	require.True(t, ok)
	assert.True(t, barrel.Active)
	assert.Equal(t, 1, barrel.Spawns)

	tr, _ := ecs.Get(r.w, e, component.TransformComponent)
	assert.Equal(t, 40.0, tr.X)
	assert.Equal(t, 80.0, tr.Y)

	body, _ := ecs.Get(r.w, e, component.PhysicsBodyComponent)
	assert.False(t, body.Disabled)
	assert.Equal(t, 80.0, body.VelocityX)
	assert.Equal(t, 1.0, body.Elasticity)

	sprite, _ := ecs.Get(r.w, e, component.SpriteComponent)
	assert.False(t, sprite.Hidden)
	hazard, _ := ecs.Get(r.w, e, component.HazardComponent)
	assert.False(t, hazard.Disabled)

	ttl, ok := ecs.Get(r.w, e, component.TTLComponent)
	require.True(t, ok)
	assert.Equal(t, 10000.0, ttl.Millis)
	assert.Equal(t, component.TTLDeactivate, ttl.Action)
}

func TestSpawnerReusesPooledBarrel(t *testing.T) {
	r := newSpawnRig(t, 0)
	r.run(2)
	first := r.spawnEvents()[0].Source

	ttl, _ := ecs.Get(r.w, first, component.TTLComponent)
	ttl.Millis = 1
	NewTTLSystem().Update(r.w)
	b, _ := ecs.Get(r.w, first, component.BarrelComponent)
	require.False(t, b.Active)

	r.run(1)
	evts := r.spawnEvents()
	require.Len(t, evts, 1)
	assert.Equal(t, first, evts[0].Source)
	assert.Equal(t, 1, r.created)
	assert.Equal(t, 2, b.Spawns)
}

func TestSpawnerRearmsAfterEachSpawn(t *testing.T) {
	r := newSpawnRig(t, 0)
	r.run(4)
	assert.Equal(t, 3, r.created, "every active barrel blocks reuse")
	assert.Equal(t, 4, r.delays)
}

func TestSpawnerFollowsMovingGoal(t *testing.T) {
	r := newSpawnRig(t, 0)
	r.run(1)
	r.goal.X, r.goal.Y = 120, 300
	r.run(1)

	e := r.spawnEvents()[0].Source
	tr, _ := ecs.Get(r.w, e, component.TransformComponent)
	assert.Equal(t, 120.0, tr.X)
	assert.Equal(t, 300.0, tr.Y)
}

func TestRandomDelayRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		d := RandomDelay(100, 5000)
		require.GreaterOrEqual(t, d, 100.0)
		require.LessOrEqual(t, d, 5000.0)
	}
	assert.Equal(t, 250.0, RandomDelay(250, 250))
	assert.Equal(t, 250.0, RandomDelay(250, 10))
}

func TestDelayScript(t *testing.T) {
	delay, err := LoadDelayScript("spawner.tengo")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		d := delay(100, 5000)
		require.GreaterOrEqual(t, d, 100.0)
		require.LessOrEqual(t, d, 5000.0)
	}
	assert.Equal(t, 300.0, delay(300, 300))
}

func TestDelayScriptMissing(t *testing.T) {
	_, err := LoadDelayScript("nope.tengo")
	assert.Error(t, err)
}
