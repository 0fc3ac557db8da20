package kernel

import (
	"fmt"

	"waterdelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not created through one
// of the constructor functions. The zero value of UUID is invalid.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identity value object for orders, users, addresses and audit
// entries. It wraps github.com/google/uuid so the domain model does not
// depend on the library type directly.
//
// UUID is immutable and safe for concurrent use. The zero value is invalid;
// use Validate to detect it.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString("3f1c9a4e-7d20-4b7e-9f05-58c1a2b6d410")
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random identifier (UUID version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation. This is the
// conversion used on identifiers arriving in API requests.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores a UUID from its 16-byte form, the representation
// identifiers are persisted in. The nil UUID is rejected.
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

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value. Used by the persistence
// layer; domain code should not need it.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values identify the same entity.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID was constructed and is not the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
