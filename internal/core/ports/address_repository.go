package ports

import (
	"context"

	"waterdelivery/internal/core/domain/model/kernel"
)

// AddressRepository is the read contract for delivery addresses, which
// are owned by an upstream system. The core only needs the zone a given
// address belongs to.
type AddressRepository interface {
	// GetZone returns the delivery zone of the address.
	GetZone(ctx context.Context, addressID kernel.UUID) (string, error)
}
