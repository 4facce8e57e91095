package nest

import "math/rand/v2"

// newEntityID draws IDs for NewRandomEntity and the primitive constructors.
// IDs are not guaranteed unique.
var newEntityID = func() int {
	return int(rand.Int32())
}

// Entity is an identity-bearing positioned object and the base of every
// primitive. An entity may own one bound texture. Ownership follows the
// entity's address: a copy of a bound entity owns nothing, so pass *Entity
// once a texture is bound.
type Entity struct {
	ID       int
	Position Vec2
	// Active is a caller-maintained flag. The engine does not filter on it.
	Active bool

	texture *Texture
}

// NewEntity creates an active entity with the given ID and position.
func NewEntity(id int, pos Vec2) Entity {
	return Entity{ID: id, Position: pos, Active: true}
}

// NewRandomEntity creates an active entity with a pseudo-random ID.
func NewRandomEntity(pos Vec2) Entity {
	return NewEntity(newEntityID(), pos)
}

// Base returns e itself. Every primitive gets it by embedding Entity.
func (e *Entity) Base() *Entity {
	return e
}

// SetActive sets the active flag.
func (e *Entity) SetActive(active bool) {
	e.Active = active
}

// IsActive reports the active flag.
func (e *Entity) IsActive() bool {
	return e.Active
}

// Equal reports whether e and o have the same ID, position, and active flag.
// Bound textures are not compared.
func (e *Entity) Equal(o *Entity) bool {
	return e.ID == o.ID &&
		e.Position == o.Position &&
		e.Active == o.Active
}

// Texture returns the texture owned by e, or nil.
func (e *Entity) Texture() *Texture {
	return e.ownedTexture()
}

// ownedTexture returns e.texture only while e is still its owner.
func (e *Entity) ownedTexture() *Texture {
	if e.texture == nil || e.texture.owner != e {
		return nil
	}
	return e.texture
}

// UnbindTexture releases the texture owned by e, if any. Calling it again is
// a no-op. On a copy of a bound entity it only drops the stale reference.
func (e *Entity) UnbindTexture() {
	t := e.ownedTexture()
	e.texture = nil
	if t == nil {
		return
	}
	t.owner = nil
	t.Release()
}
