// Package uuid wraps google/uuid so that the IDs of invoices, allocation rules
// and allocation sessions can be bound from URI parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse parses a UUID string. The empty string parses to Nil.
func Parse(s string) (UUID, error) {
	var u UUID
	err := u.UnmarshalParam(s)
	return u, err
}

// UnmarshalParam is called by gin when binding the :id URI parameter
// of /v1/invoices, /v1/allocation-rules and /v1/allocation-sessions.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
