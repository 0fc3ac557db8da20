package schedulerepo_test

import (
	"context"
	"testing"
	"time"

	"waterdelivery/internal/adapters/out/postgres/schedulerepo"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/schedule"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ScheduleRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *schedulerepo.GormScheduleRepository
}

func (suite *ScheduleRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&schedulerepo.ZoneCapacityDTO{}, &schedulerepo.HolidayDTO{})
	suite.Require().NoError(err)

	suite.repo = schedulerepo.NewGormScheduleRepository(db)
}

func (suite *ScheduleRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ScheduleRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE zone_capacity, holidays CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ScheduleRepositoryTestSuite) TestMaxPerDay_ActiveRecord() {
	ctx := context.Background()
	capacity, err := schedule.NewZoneCapacity(kernel.NewUUID(), "North", 140)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddZoneCapacity(ctx, capacity))

	limit, found, err := suite.repo.MaxPerDay(ctx, "North")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(140, limit)
}

func (suite *ScheduleRepositoryTestSuite) TestMaxPerDay_MissingZone() {
	_, found, err := suite.repo.MaxPerDay(context.Background(), "Atlantis")
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *ScheduleRepositoryTestSuite) TestMaxPerDay_DeactivatedRecordInvisible() {
	ctx := context.Background()
	capacity, err := schedule.NewZoneCapacity(kernel.NewUUID(), "North", 140)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddZoneCapacity(ctx, capacity))

	capacity.Deactivate()
	suite.Require().NoError(suite.repo.UpdateZoneCapacity(ctx, capacity))

	_, found, err := suite.repo.MaxPerDay(ctx, "North")
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *ScheduleRepositoryTestSuite) TestUpdateZoneCapacity_ChangesLimit() {
	ctx := context.Background()
	capacity, err := schedule.NewZoneCapacity(kernel.NewUUID(), "South", 50)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddZoneCapacity(ctx, capacity))

	suite.Require().NoError(capacity.ChangeLimit(60))
	suite.Require().NoError(suite.repo.UpdateZoneCapacity(ctx, capacity))

	limit, found, err := suite.repo.MaxPerDay(ctx, "South")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(60, limit)
}

func (suite *ScheduleRepositoryTestSuite) TestCountZoneCapacities() {
	ctx := context.Background()
	count, err := suite.repo.CountZoneCapacities(ctx)
	suite.Require().NoError(err)
	suite.Zero(count)

	capacity, err := schedule.NewZoneCapacity(kernel.NewUUID(), "Other", 91)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddZoneCapacity(ctx, capacity))

	count, err = suite.repo.CountZoneCapacities(ctx)
	suite.Require().NoError(err)
	suite.EqualValues(1, count)
}

func (suite *ScheduleRepositoryTestSuite) TestIsHoliday() {
	ctx := context.Background()
	newYear := kernel.NewDay(2025, time.January, 1)
	holiday, err := schedule.NewHoliday(kernel.NewUUID(), newYear, "New Year")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddHoliday(ctx, holiday))

	isHoliday, err := suite.repo.IsHoliday(ctx, newYear)
	suite.Require().NoError(err)
	suite.True(isHoliday)

	isHoliday, err = suite.repo.IsHoliday(ctx, newYear.Next())
	suite.Require().NoError(err)
	suite.False(isHoliday)
}

func TestScheduleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleRepositoryTestSuite))
}
