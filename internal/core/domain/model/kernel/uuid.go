package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// SystemActor is the actor recorded for transitions made by scheduled jobs
// rather than by a person (for example the info-request expiry sweep).
var SystemActor = UUID{id: uuid.MustParse("00000000-0000-4000-8000-000000000001")}

// UUID identifies applications, documents, orders and actors.
// The zero value is invalid; build it with NewUUID, UUIDFromString or UUIDFromBytes.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn or hyphen-less forms.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// UUIDFromBytes builds a UUID from exactly 16 bytes, as stored by the postgres adapters.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// UUIDPtrFromBytes converts a nullable column value.
func UUIDPtrFromBytes(b *uuid.UUID) (*UUID, error) {
	if b == nil {
		return nil, nil
	}
	id, err := UUIDFromBytes(b[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// PtrBytes converts an optional identifier into its nullable column value.
func PtrBytes(u *UUID) *uuid.UUID {
	if u == nil {
		return nil
	}
	raw := u.Bytes()
	return &raw
}

// PtrString converts an optional identifier into a nullable string.
func PtrString(u *UUID) *string {
	if u == nil {
		return nil
	}
	s := u.String()
	return &s
}
