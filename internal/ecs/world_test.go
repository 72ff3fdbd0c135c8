package ecs

import "testing"

// stub components used only in tests
type posStub struct{ x, y int }

func (posStub) Type() ComponentType { return 1 }

type flagStub struct{}

func (flagStub) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestAttachAndComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Attach(id, posStub{x: 4, y: 7})

	c := w.Component(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	p, ok := c.(posStub)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if p.x != 4 || p.y != 7 {
		t.Fatalf("expected (4,7), got (%d,%d)", p.x, p.y)
	}
}

func TestAttachReplacesExisting(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Attach(id, posStub{x: 1})
	w.Attach(id, posStub{x: 2})

	p := w.Component(id, ComponentType(1)).(posStub)
	if p.x != 2 {
		t.Fatalf("expected latest value 2, got %d", p.x)
	}
}

func TestDestroyEntityDetachesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Attach(id, posStub{})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Component(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestJoinFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	w.Attach(both, posStub{})
	w.Attach(both, flagStub{})

	posOnly := w.CreateEntity()
	w.Attach(posOnly, posStub{})

	dead := w.CreateEntity()
	w.Attach(dead, posStub{})
	w.Attach(dead, flagStub{})
	w.DestroyEntity(dead)

	ids := w.Join(ComponentType(1), ComponentType(2))
	if len(ids) != 1 || ids[0] != both {
		t.Fatalf("expected join to return only %v, got %v", both, ids)
	}
}

func TestJoinEmptyTypes(t *testing.T) {
	w := NewWorld()
	if ids := w.Join(); ids != nil {
		t.Fatalf("expected nil for empty join, got %v", ids)
	}
}
