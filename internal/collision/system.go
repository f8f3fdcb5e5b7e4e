package collision

import "slidepuzzle/internal/mathutil"

// Entity is a named collider registered with a System.
type Entity struct {
	ID    string
	Shape Shape
}

// System keeps named colliders, such as UI buttons, and answers hit tests
// against them in registration order.
type System struct {
	entities []*Entity
	index    map[string]int
}

// NewSystem creates an empty collision system.
func NewSystem() *System {
	return &System{index: make(map[string]int)}
}

// RegisterEntity adds a collider, replacing any previous one with the same ID.
func (cs *System) RegisterEntity(id string, shape Shape) *Entity {
	e := &Entity{ID: id, Shape: shape}
	if i, exists := cs.index[id]; exists {
		cs.entities[i] = e
		return e
	}
	cs.index[id] = len(cs.entities)
	cs.entities = append(cs.entities, e)
	return e
}

// UnregisterEntity removes the collider with the given ID.
func (cs *System) UnregisterEntity(id string) {
	i, exists := cs.index[id]
	if !exists {
		return
	}
	cs.entities = append(cs.entities[:i], cs.entities[i+1:]...)
	delete(cs.index, id)
	for j := i; j < len(cs.entities); j++ {
		cs.index[cs.entities[j].ID] = j
	}
}

// GetEntityByID returns the entity with the given ID, or nil if not found.
func (cs *System) GetEntityByID(id string) *Entity {
	if i, ok := cs.index[id]; ok {
		return cs.entities[i]
	}
	return nil
}

// UpdateEntity moves a rectangle or circle collider.
func (cs *System) UpdateEntity(id string, pos mathutil.Vector2) {
	e := cs.GetEntityByID(id)
	if e == nil {
		return
	}
	switch s := e.Shape.(type) {
	case *Rectangle:
		s.UpdatePosition(pos)
	case *Circle:
		s.UpdatePosition(pos)
	case Point:
		e.Shape = Point(pos)
	}
}

// Hit reports whether the entity with the given ID overlaps shape.
func (cs *System) Hit(id string, shape Shape) bool {
	e := cs.GetEntityByID(id)
	if e == nil {
		return false
	}
	return Collides(shape, e.Shape)
}

// HitTest returns the IDs of every entity overlapping shape.
func (cs *System) HitTest(shape Shape) []string {
	var hits []string
	for _, e := range cs.entities {
		if Collides(shape, e.Shape) {
			hits = append(hits, e.ID)
		}
	}
	return hits
}

// Len returns the number of registered entities.
func (cs *System) Len() int {
	return len(cs.entities)
}
