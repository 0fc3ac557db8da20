// Package schedulerepo persists the delivery schedule configuration:
// per-zone capacity records and holidays.
package schedulerepo

import (
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/schedule"

	"github.com/google/uuid"
)

// ZoneCapacityDTO represents the database structure for zone capacity records.
// The zone name is unique; deactivated records stay in place so history
// keeps referencing them.
type ZoneCapacityDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Zone      string    `gorm:"type:varchar(64);uniqueIndex"`
	MaxPerDay int
	Active    bool
}

// TableName specifies the database table name for zone capacity records.
func (ZoneCapacityDTO) TableName() string {
	return "zone_capacity"
}

// HolidayDTO represents the database structure for holidays.
type HolidayDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date        time.Time `gorm:"type:date;uniqueIndex"`
	Description string
}

// TableName specifies the database table name for holidays.
func (HolidayDTO) TableName() string {
	return "holidays"
}

func capacityFromDomain(capacity *schedule.ZoneCapacity) ZoneCapacityDTO {
	return ZoneCapacityDTO{
		ID:        capacity.ID().Bytes(),
		Zone:      capacity.Zone(),
		MaxPerDay: capacity.MaxPerDay(),
		Active:    capacity.IsActive(),
	}
}

func holidayFromDomain(holiday *schedule.Holiday) HolidayDTO {
	return HolidayDTO{
		ID:          holiday.ID().Bytes(),
		Date:        holiday.Date().Time(),
		Description: holiday.Description(),
	}
}

func capacityToDomain(dto ZoneCapacityDTO) (*schedule.ZoneCapacity, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return schedule.RestoreZoneCapacity(id, dto.Zone, dto.MaxPerDay, dto.Active)
}
