package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/barrelclimb/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_destroy_middle", 3, 1, 2},
		{"none_destroyed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d entities, got %d", c.wantAlive, got)
			}
			if w.Len() != c.wantAlive {
				t.Fatalf("Len() = %d, want %d", w.Len(), c.wantAlive)
			}
		})
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused handle must differ by generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, reused, h) {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, h, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get[int](w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove[int](w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has[string](w, e1, h2) || !Has[string](w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove[string](w, e1, h2) },
		},
		{
			name:  "overwrite_keeps_single_entry",
			setup: func() error { return Add(w, e2, h1, intPtr(5)) },
			check: func(t *testing.T) {
				if err := Add(w, e2, h1, intPtr(6)); err != nil {
					t.Fatal(err)
				}
				if got := w.Query(h1.Kind()); len(got) != 1 {
					t.Fatalf("expected one entity with int, got %v", got)
				}
				if v, _ := Get[int](w, e2, h1); *v != 6 {
					t.Fatalf("expected overwritten value 6, got %d", *v)
				}
			},
			teardown: func() bool { return Remove[int](w, e2, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddRejectsNil(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()
	if err := Add[int](w, e, h, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentHandle[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h, func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachAllowsDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h, func(e Entity, v *int) {
		visited++
		if *v%2 == 0 {
			DestroyEntity(w, e)
		}
	})
	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if got := len(w.Query(h.Kind())); got != 2 {
		t.Fatalf("expected 2 survivors, got %d", got)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				kc := component.NewComponent[int]()

				for _, add := range []func() error{
					func() error { return Add(w, e1, ka, intPtr(1)) },
					func() error { return Add(w, e2, ka, intPtr(2)) },
					func() error { return Add(w, e2, kb, intPtr(3)) },
					func() error { return Add(w, e2, kc, intPtr(5)) },
					func() error { return Add(w, e3, kb, intPtr(4)) },
				} {
					if err := add(); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				kc := component.NewComponent[int]()

				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))
				_ = Add(w, e, kc, intPtr(3))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				kc := component.NewComponent[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEach4(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	ka := component.NewComponent[int]()
	kb := component.NewComponent[int]()
	kc := component.NewComponent[int]()
	kd := component.NewComponent[int]()

	for _, k := range []component.ComponentHandle[int]{ka, kb, kc, kd} {
		if err := Add(w, e2, k, intPtr(7)); err != nil {
			t.Fatal(err)
		}
	}
	if err := Add(w, e1, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}

	var res []Entity
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()
	if _, ok := First(w, h); ok {
		t.Fatalf("expected no entity in empty world")
	}
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, h, stringPtr("a"))
	_ = Add(w, e2, h, stringPtr("b"))
	DestroyEntity(w, e1)

	got, ok := First(w, h)
	if !ok || got != e2 {
		t.Fatalf("expected e2, got %v ok=%v", got, ok)
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(*World) { *s.calls = append(*s.calls, s.name) }

func TestSchedulerOrder(t *testing.T) {
	var calls []string
	s := NewScheduler(countingSystem{&calls, "a"}, nil, countingSystem{&calls, "b"})
	s.Add(countingSystem{&calls, "c"})
	s.Update(NewWorld())
	s.Update(nil)

	want := []string{"a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 registered systems")
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Kind: EventRestart, Detail: "fire"})
	w.Events().Push(Event{Kind: EventJump})
	if w.Events().Len() != 2 {
		t.Fatalf("expected 2 queued events")
	}
	got := w.Events().Drain()
	if len(got) != 2 || got[0].Kind != EventRestart {
		t.Fatalf("unexpected drain result %v", got)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}
