package tuuid

import "github.com/google/uuid"

// FromGoogle converts a github.com/google/uuid value. Both types share the
// same big-endian byte layout.
func FromGoogle(g uuid.UUID) UUID {
	return fromArray([16]byte(g))
}

// Google returns the UUID as a github.com/google/uuid value.
func (u UUID) Google() uuid.UUID {
	return uuid.UUID(u.Array())
}
