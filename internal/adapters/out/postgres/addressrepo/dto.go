// Package addressrepo reads delivery addresses. Addresses are owned by an
// upstream system; this adapter only resolves the zone an address belongs
// to and migrates the table other components join against.
package addressrepo

import (
	"github.com/google/uuid"
)

// AddressDTO represents the database structure for delivery addresses.
type AddressDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Zone   string    `gorm:"type:varchar(64);index"`
	Street string
}

// TableName specifies the database table name for delivery addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}
