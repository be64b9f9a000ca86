package system

import (
	"log"

	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

// BarrelFactory creates a new, inactive barrel when the pool is empty.
type BarrelFactory func(w *ecs.World) (ecs.Entity, error)

// SpawnerSystem rolls barrels out of the goal at random intervals. Barrels
// come from a pool of inactive ones before new ones are created.
type SpawnerSystem struct {
	delay     DelayFunc
	newBarrel BarrelFactory
}

func NewSpawnerSystem(delay DelayFunc, newBarrel BarrelFactory) *SpawnerSystem {
	if delay == nil {
		delay = RandomDelay
	}
	return &SpawnerSystem{delay: delay, newBarrel: newBarrel}
}

func (s *SpawnerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.SpawnerComponent, func(e ecs.Entity, sp *component.Spawner) {
		if !sp.Armed {
			s.arm(sp)
			return
		}
		sp.TimerMs -= common.FrameMs
		if sp.TimerMs > 0 {
			return
		}
		if _, err := s.spawn(w, sp); err != nil {
			log.Printf("spawner: %v", err)
		}
		s.arm(sp)
	})
}

func (s *SpawnerSystem) arm(sp *component.Spawner) {
	sp.TimerMs = s.delay(sp.MinDelayMs, sp.MaxDelayMs)
	sp.Armed = true
}

func (s *SpawnerSystem) spawn(w *ecs.World, sp *component.Spawner) (ecs.Entity, error) {
	goal, ok := w.First(component.GoalTagComponent.Kind())
	if !ok {
		return 0, nil
	}
	goalT, ok := ecs.Get(w, goal, component.TransformComponent)
	if !ok {
		return 0, nil
	}

	barrel, ok := pooledBarrel(w)
	if !ok {
		if s.newBarrel == nil {
			return 0, nil
		}
		var err error
		barrel, err = s.newBarrel(w)
		if err != nil {
			return 0, err
		}
	}

	activate(w, barrel, goalT.X, goalT.Y, sp)
	w.Events().Push(ecs.Event{Kind: ecs.EventSpawn, Source: barrel})
	return barrel, nil
}

func pooledBarrel(w *ecs.World) (ecs.Entity, bool) {
	for _, e := range w.Query(component.BarrelComponent.Kind()) {
		if b, ok := ecs.Get(w, e, component.BarrelComponent); ok && !b.Active {
			return e, true
		}
	}
	return 0, false
}

// activate places barrel at x,y and sends it rolling.
func activate(w *ecs.World, barrel ecs.Entity, x, y float64, sp *component.Spawner) {
	if b, ok := ecs.Get(w, barrel, component.BarrelComponent); ok {
		b.Active = true
		b.Spawns++
	}
	if t, ok := ecs.Get(w, barrel, component.TransformComponent); ok {
		t.X = x
		t.Y = y
	}
	if sprite, ok := ecs.Get(w, barrel, component.SpriteComponent); ok {
		sprite.Hidden = false
	}
	if h, ok := ecs.Get(w, barrel, component.HazardComponent); ok {
		h.Disabled = false
	}
	if body, ok := ecs.Get(w, barrel, component.PhysicsBodyComponent); ok {
		body.Disabled = false
		body.VelocityX = sp.Speed
		body.VelocityY = 0
		body.Elasticity = sp.BounceX
		if body.Shape != nil {
			body.Shape.SetElasticity(sp.BounceX)
		}
	}
	_ = ecs.Add(w, barrel, component.TTLComponent, &component.TTL{
		Millis: sp.LifespanMs,
		Action: component.TTLDeactivate,
	})
}
