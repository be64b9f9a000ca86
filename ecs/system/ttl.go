package system

import (
	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

// TTLSystem counts TTL components down by one frame and acts on the ones
// that run out: destroy the entity, or deactivate it for reuse.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent, func(e ecs.Entity, ttl *component.TTL) {
		ttl.Millis -= common.FrameMs
		if ttl.Millis > 0 {
			return
		}

		switch ttl.Action {
		case component.TTLDeactivate:
			deactivate(w, e)
			ecs.Remove(w, e, component.TTLComponent)
		default:
			ecs.DestroyEntity(w, e)
		}
	})
}

// deactivate hides e and takes it out of physics and hazard checks.
func deactivate(w *ecs.World, e ecs.Entity) {
	if barrel, ok := ecs.Get(w, e, component.BarrelComponent); ok {
		barrel.Active = false
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok {
		sprite.Hidden = true
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		body.Disabled = true
		body.SetVelocity(0, 0)
	}
	if hazard, ok := ecs.Get(w, e, component.HazardComponent); ok {
		hazard.Disabled = true
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventDespawn, Source: e})
}
