package ecs

import "github.com/milk9111/barrelclimb/ecs/component"

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*componentStore)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		store = newComponentStore()
		w.stores[kind.ID()] = store
	}
	store.set(e, value)
	return nil
}

func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	store := w.store(kind)
	if store == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	return store.get(e)
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	store := w.store(kind)
	if store == nil {
		return false
	}
	return store.remove(e)
}

// Query returns the live entities that have every listed component, in the
// storage order of the smallest store.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*componentStore, 0, len(kinds))
	var smallest *componentStore
	for _, k := range kinds {
		s := w.store(k)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}

	var out []Entity
	for _, e := range smallest.snapshot() {
		if !w.entities.isAlive(e) {
			continue
		}
		matched := true
		for _, s := range stores {
			if s == smallest {
				continue
			}
			if _, ok := s.get(e); !ok {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	store := w.store(kind)
	if store == nil {
		return 0, false
	}
	for _, e := range store.entities {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

func (w *World) store(kind component.Kind) *componentStore {
	if w == nil || kind == nil || w.stores == nil {
		return nil
	}
	return w.stores[kind.ID()]
}
