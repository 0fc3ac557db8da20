package queries_test

import (
	"context"
	"testing"
	"time"

	"waterdelivery/internal/adapters/out/postgres"
	"waterdelivery/internal/adapters/out/postgres/addressrepo"
	"waterdelivery/internal/adapters/out/postgres/orderrepo"
	"waterdelivery/internal/adapters/out/postgres/schedulerepo"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLogDTO{},
		&addressrepo.AddressDTO{},
		&schedulerepo.ZoneCapacityDTO{},
		&schedulerepo.HolidayDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_logs, addresses, zone_capacity, holidays CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) addOrder(userID uuid.UUID, status order.Status, createdAt time.Time) uuid.UUID {
	id := uuid.New()
	dto := orderrepo.OrderDTO{
		ID:        id,
		UserID:    userID,
		QtyA:      2,
		QtyB:      1,
		TotalQty:  3,
		Status:    status.String(),
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *OrderQueriesTestSuite) TestListNewOrders_EmptyDatabase() {
	handler := queries.NewListNewOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewListNewOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestListNewOrders_OnlyNewOrdersOldestFirst() {
	base := time.Now().Add(-time.Hour)
	second := suite.addOrder(uuid.New(), order.New, base.Add(10*time.Minute))
	first := suite.addOrder(uuid.New(), order.New, base)
	suite.addOrder(uuid.New(), order.Confirmed, base)
	suite.addOrder(uuid.New(), order.Cancelled, base)

	handler := queries.NewListNewOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewListNewOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.String(), result[0].ID)
	suite.Equal(second.String(), result[1].ID)
	suite.Equal("new", result[0].Status)
	suite.Equal(3, result[0].TotalQty)
}

func (suite *OrderQueriesTestSuite) TestListStaleOrders_RespectsThreshold() {
	old := suite.addOrder(uuid.New(), order.New, time.Now().Add(-3*time.Hour))
	suite.addOrder(uuid.New(), order.New, time.Now().Add(-time.Hour))
	suite.addOrder(uuid.New(), order.Confirmed, time.Now().Add(-3*time.Hour))

	query, err := queries.NewListStaleOrdersQuery(2)
	suite.Require().NoError(err)

	handler := queries.NewListStaleOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(old.String(), result[0].ID)
}

func (suite *OrderQueriesTestSuite) TestGetUserOrders_PagesNewestFirst() {
	userID := uuid.New()
	base := time.Now().Add(-time.Hour)
	oldest := suite.addOrder(userID, order.New, base)
	middle := suite.addOrder(userID, order.Confirmed, base.Add(5*time.Minute))
	newest := suite.addOrder(userID, order.Completed, base.Add(10*time.Minute))
	suite.addOrder(uuid.New(), order.New, base)

	kernelUserID, err := kernel.UUIDFromString(userID.String())
	suite.Require().NoError(err)

	handler := queries.NewGetUserOrdersQueryHandler(suite.db)

	firstPage, err := queries.NewGetUserOrdersQuery(kernelUserID, 2, 0)
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), firstPage)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newest.String(), result[0].ID)
	suite.Equal(middle.String(), result[1].ID)

	secondPage, err := queries.NewGetUserOrdersQuery(kernelUserID, 2, 2)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), secondPage)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(oldest.String(), result[0].ID)
}

func (suite *OrderQueriesTestSuite) TestGetOrderHistory_OldestFirstWithNullableFields() {
	orderID := suite.addOrder(uuid.New(), order.Confirmed, time.Now().Add(-time.Hour))
	oldStatus := "new"
	newStatus := "confirmed"
	operatorID := uuid.New()

	created := orderrepo.OrderLogDTO{
		ID:        uuid.New(),
		OrderID:   orderID,
		Action:    "created",
		Comment:   "order placed",
		CreatedAt: time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond),
	}
	confirmed := orderrepo.OrderLogDTO{
		ID:         uuid.New(),
		OrderID:    orderID,
		Action:     "status_change",
		OldStatus:  &oldStatus,
		NewStatus:  &newStatus,
		OperatorID: &operatorID,
		CreatedAt:  time.Now().Add(-30 * time.Minute).UTC().Truncate(time.Microsecond),
	}
	suite.Require().NoError(suite.db.Create(&confirmed).Error)
	suite.Require().NoError(suite.db.Create(&created).Error)

	kernelOrderID, err := kernel.UUIDFromString(orderID.String())
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderHistoryQuery(kernelOrderID)
	suite.Require().NoError(err)

	handler := queries.NewGetOrderHistoryQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("created", result[0].Action)
	suite.Nil(result[0].OldStatus)
	suite.Nil(result[0].OperatorID)
	suite.Equal("status_change", result[1].Action)
	suite.Require().NotNil(result[1].OldStatus)
	suite.Equal("new", *result[1].OldStatus)
	suite.Require().NotNil(result[1].OperatorID)
	suite.Equal(operatorID.String(), *result[1].OperatorID)
}

func (suite *OrderQueriesTestSuite) TestFindSlot_ReturnsFeasibleBusinessDay() {
	err := suite.db.Create(&schedulerepo.ZoneCapacityDTO{
		ID:        uuid.New(),
		Zone:      "North",
		MaxPerDay: 10,
		Active:    true,
	}).Error
	suite.Require().NoError(err)

	handler := queries.NewFindSlotQueryHandler(
		postgres.NewGormUnitOfWorkFactory(suite.db),
		services.SlotFinderConfig{
			GlobalDailyLimit: services.DefaultGlobalDailyLimit,
			HorizonDays:      services.DefaultHorizonDays,
			FallbackZone:     services.DefaultFallbackZone,
			DefaultZoneLimit: services.DefaultZoneLimit,
		},
		services.DefaultCutoffHour,
	)

	query, err := queries.NewFindSlotQuery("North", 4, kernel.Day{})
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(6, result.ZoneRemaining)
	suite.Equal(services.DefaultGlobalDailyLimit-4, result.TotalRemaining)

	day, err := kernel.DayFromString(result.Date)
	suite.Require().NoError(err)
	suite.False(day.IsWeekend())
	suite.False(day.Before(kernel.DayOf(time.Now().UTC())))
}

func (suite *OrderQueriesTestSuite) TestFindSlot_ZoneNeverFits() {
	err := suite.db.Create(&schedulerepo.ZoneCapacityDTO{
		ID:        uuid.New(),
		Zone:      "North",
		MaxPerDay: 3,
		Active:    true,
	}).Error
	suite.Require().NoError(err)

	handler := queries.NewFindSlotQueryHandler(
		postgres.NewGormUnitOfWorkFactory(suite.db),
		services.SlotFinderConfig{
			GlobalDailyLimit: services.DefaultGlobalDailyLimit,
			HorizonDays:      14,
			FallbackZone:     services.DefaultFallbackZone,
			DefaultZoneLimit: services.DefaultZoneLimit,
		},
		services.DefaultCutoffHour,
	)

	query, err := queries.NewFindSlotQuery("North", 5, kernel.Day{})
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, services.ErrNoSlotAvailable)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
