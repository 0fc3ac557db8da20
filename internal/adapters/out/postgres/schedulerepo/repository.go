package schedulerepo

import (
	"context"
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/schedule"

	"gorm.io/gorm"
)

// GormScheduleRepository implements ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GORM schedule repository.
func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// AddZoneCapacity saves a new zone capacity record to the database.
func (r *GormScheduleRepository) AddZoneCapacity(ctx context.Context, capacity *schedule.ZoneCapacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	dto := capacityFromDomain(capacity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateZoneCapacity saves changes to an existing zone capacity record.
func (r *GormScheduleRepository) UpdateZoneCapacity(ctx context.Context, capacity *schedule.ZoneCapacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	dto := capacityFromDomain(capacity)
	result := r.db.WithContext(ctx).Model(&ZoneCapacityDTO{}).
		Where("id = ?", dto.ID).
		Select("zone", "max_per_day", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// MaxPerDay returns the active daily limit for the zone and whether an
// active record for it exists.
func (r *GormScheduleRepository) MaxPerDay(ctx context.Context, zone string) (int, bool, error) {
	var dto ZoneCapacityDTO
	err := r.db.WithContext(ctx).First(&dto, "zone = ? AND active", zone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	capacity, err := capacityToDomain(dto)
	if err != nil {
		return 0, false, err
	}

	return capacity.MaxPerDay(), true, nil
}

// CountZoneCapacities returns the number of capacity records, inactive
// ones included.
func (r *GormScheduleRepository) CountZoneCapacities(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ZoneCapacityDTO{}).Count(&count).Error
	return count, err
}

// AddHoliday saves a new holiday to the database.
func (r *GormScheduleRepository) AddHoliday(ctx context.Context, holiday *schedule.Holiday) error {
	if err := holiday.Validate(); err != nil {
		return err
	}

	dto := holidayFromDomain(holiday)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// IsHoliday reports whether the date is a registered holiday.
func (r *GormScheduleRepository) IsHoliday(ctx context.Context, date kernel.Day) (bool, error) {
	if err := date.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&HolidayDTO{}).
		Where("date = ?", date.Time()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
