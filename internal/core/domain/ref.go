package domain

// Ref carries a resolved entity between composed operations so a downstream
// consumer can skip resolution entirely. It is a value type: constructed
// once, copied between pipeline stages, never mutated, and it holds no
// reference back into any cache.
type Ref struct {
	id      string
	spaceID string
}

// NewRef creates a Ref for the entity with the given identifier.
// spaceID is the parent scope identifier and may be empty for top-level
// entities such as spaces.
func NewRef(id, spaceID string) Ref {
	return Ref{id: id, spaceID: spaceID}
}

// ID returns the entity's own identifier.
func (r Ref) ID() string {
	return r.id
}

// SpaceID returns the parent space identifier and whether one is set.
func (r Ref) SpaceID() (string, bool) {
	return r.spaceID, r.spaceID != ""
}

// IsZero reports whether the ref carries no identity.
func (r Ref) IsZero() bool {
	return r.id == ""
}

// Equal compares two refs by identifier only. Cached metadata such as the
// parent scope does not participate in equality.
func (r Ref) Equal(other Ref) bool {
	return r.id == other.id
}
