package ecs

import "github.com/milk9111/barrelclimb/ecs/component"

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities lists every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, handle.Kind(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	return w.First(handle.Kind())
}

func ForEach[A any](w *World, ha component.ComponentHandle[A], fn func(Entity, *A)) {
	for _, e := range w.Query(ha.Kind()) {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ha.Kind(), hb.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ha.Kind(), hb.Kind(), hc.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		c, okC := Get(w, e, hc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], hd component.ComponentHandle[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(ha.Kind(), hb.Kind(), hc.Kind(), hd.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		c, okC := Get(w, e, hc)
		d, okD := Get(w, e, hd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}
