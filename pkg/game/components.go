package game

import "github.com/google/uuid"

// Position is an entity's location in world space.
type Position struct {
	X, Y, Z float64
}

// Velocity is an entity's per-tick displacement.
type Velocity struct {
	DX, DY, DZ float64
}

// Health is an entity's current and maximum hit points.
type Health struct {
	Current int
	Max     int
}

// Dead reports whether the entity should be removed from play.
func (h Health) Dead() bool { return h.Current <= 0 }

// PlayerIdentity marks an entity as a connected player and carries the
// identity pkg/net established during login.
type PlayerIdentity struct {
	UUID     uuid.UUID
	Username string
}
