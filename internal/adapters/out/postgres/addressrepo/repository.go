package addressrepo

import (
	"context"
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// GetZone returns the delivery zone of the address.
func (r *GormAddressRepository) GetZone(ctx context.Context, addressID kernel.UUID) (string, error) {
	if err := addressID.Validate(); err != nil {
		return "", err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", addressID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("address", addressID.String())
		}
		return "", err
	}

	return dto.Zone, nil
}
