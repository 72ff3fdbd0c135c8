package ecs

// World is a typed-component registry keyed by entity ID.
// Components live in parallel maps, one per component type, so systems can
// iterate the join of several types without any inheritance machinery.
type World struct {
	nextID EntityID
	alive  map[EntityID]bool
	stores map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]bool),
		stores: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and detaches all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	for _, store := range w.stores {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Attach stores a component on an entity, replacing any previous value
// of the same type.
func (w *World) Attach(id EntityID, c Component) {
	t := c.Type()
	if w.stores[t] == nil {
		w.stores[t] = make(map[EntityID]Component)
	}
	w.stores[t][id] = c
}

// Detach removes the component of the given type from an entity.
func (w *World) Detach(id EntityID, t ComponentType) {
	if store := w.stores[t]; store != nil {
		delete(store, id)
	}
}

// Component returns the entity's component of the given type, or nil.
func (w *World) Component(id EntityID, t ComponentType) Component {
	store := w.stores[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Has reports whether the entity carries a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Component(id, t) != nil
}

// Join returns every alive entity that carries all of the listed types.
func (w *World) Join(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Iterate the smallest store; membership-check the rest.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.stores[t]) < len(w.stores[smallest]) {
			smallest = t
		}
	}
	store := w.stores[smallest]
	if store == nil {
		return nil
	}
	var out []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			out = append(out, id)
		}
	}
	return out
}
