package ecs

import "github.com/kamstrup/intmap"

// entityStore tracks slot generations and recycles freed slots.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
	count int
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	s.count++
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}

func (s *entityStore) each(fn func(Entity)) {
	for i, ok := range s.alive {
		if ok {
			fn(makeEntity(entityID(i+1), s.gen[i]))
		}
	}
}

// componentStore keeps one component type densely packed. The sparse side
// maps entity slot ids to dense indexes.
type componentStore struct {
	entities []Entity
	values   []any
	index    *intmap.Map[entityID, int]
}

func newComponentStore() *componentStore {
	return &componentStore{index: intmap.New[entityID, int](64)}
}

func (s *componentStore) get(e Entity) (any, bool) {
	idx, ok := s.index.Get(e.id())
	if !ok || s.entities[idx] != e {
		return nil, false
	}
	return s.values[idx], true
}

func (s *componentStore) set(e Entity, v any) {
	if idx, ok := s.index.Get(e.id()); ok {
		s.entities[idx] = e
		s.values[idx] = v
		return
	}
	s.index.Put(e.id(), len(s.entities))
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

func (s *componentStore) remove(e Entity) bool {
	idx, ok := s.index.Get(e.id())
	if !ok || s.entities[idx] != e {
		return false
	}
	last := len(s.entities) - 1
	if idx != last {
		moved := s.entities[last]
		s.entities[idx] = moved
		s.values[idx] = s.values[last]
		s.index.Put(moved.id(), idx)
	}
	s.entities[last] = 0
	s.values[last] = nil
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	s.index.Del(e.id())
	return true
}

func (s *componentStore) len() int {
	return len(s.entities)
}

// snapshot copies the entity list so callers may mutate the store while
// iterating.
func (s *componentStore) snapshot() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}
