package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/adapters/out/postgres/userrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL database, seeding orders through the repository so the
// projections are tested against what the write side actually stores.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &productrepo.ProductDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, products, users").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(customerName string, status order.Status, ownerID *kernel.UUID, quantities ...int) *order.Order {
	ctx := context.Background()
	price, err := kernel.NewMoneyFromFloat(25.90)
	suite.Require().NoError(err)

	items := make([]*order.Item, 0, len(quantities))
	var total kernel.Money
	for _, qty := range quantities {
		item, itemErr := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), qty, price, price.Mul(qty), "")
		suite.Require().NoError(itemErr)
		items = append(items, item)
		total = total.Add(item.TotalPrice())
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerName, "", nil,
		order.PaymentCash, "", total, 25, ownerID, items)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	if status != order.Pending {
		for _, next := range pathTo(status) {
			suite.Require().NoError(aggregate.ChangeStatus(next, ""))
		}
		suite.Require().NoError(suite.orderRepo.Update(ctx, aggregate))
	}

	return aggregate
}

// pathTo returns the transition chain from Pending to the target status.
func pathTo(target order.Status) []order.Status {
	chain := []order.Status{order.Confirmed, order.Preparing, order.Ready, order.Delivering, order.Delivered}
	if target == order.Cancelled {
		return []order.Status{order.Cancelled}
	}
	for i, s := range chain {
		if s == target {
			return chain[:i+1]
		}
	}
	return nil
}

func (suite *QueryHandlersIntegrationTestSuite) seedUser(name, email string) kernel.UUID {
	id := kernel.NewUUID()
	user := userrepo.UserDTO{ID: id.Bytes(), Name: name, Email: email}
	suite.Require().NoError(suite.db.Create(&user).Error)
	return id
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_EmptyDatabase() {
	handler := queries.NewListOrdersQueryHandler(suite.db)
	query, err := queries.NewListOrdersQuery(nil, nil, 0, 0)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_ReturnsSummaries() {
	suite.seedOrder("Maria Silva", order.Pending, nil, 2, 1)
	suite.seedOrder("Joao Santos", order.Confirmed, nil, 1)

	handler := queries.NewListOrdersQueryHandler(suite.db)
	query, err := queries.NewListOrdersQuery(nil, nil, 0, 0)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(2), result.Total)

	byName := make(map[string]queries.OrderSummary)
	for _, summary := range result.Orders {
		byName[summary.CustomerName] = summary
	}
	suite.Equal(2, byName["Maria Silva"].ItemCount)
	suite.Equal(1, byName["Joao Santos"].ItemCount)
	suite.InDelta(77.70, byName["Maria Silva"].TotalAmount, 0.001)
	suite.Equal("pending", byName["Maria Silva"].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_FiltersByStatus() {
	suite.seedOrder("Maria Silva", order.Pending, nil, 1)
	suite.seedOrder("Joao Santos", order.Confirmed, nil, 1)

	handler := queries.NewListOrdersQueryHandler(suite.db)
	status := order.Confirmed
	query, err := queries.NewListOrdersQuery(&status, nil, 0, 0)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(int64(1), result.Total)
	suite.Equal("Joao Santos", result.Orders[0].CustomerName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_FiltersByDate() {
	aged := suite.seedOrder("Maria Silva", order.Pending, nil, 1)
	suite.seedOrder("Joao Santos", order.Pending, nil, 1)

	yesterday := time.Now().AddDate(0, 0, -1)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", aged.ID().Bytes()).
		Update("created_at", yesterday).Error)

	handler := queries.NewListOrdersQueryHandler(suite.db)
	query, err := queries.NewListOrdersQuery(nil, &yesterday, 0, 0)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal("Maria Silva", result.Orders[0].CustomerName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_Paginates() {
	for range 5 {
		suite.seedOrder("Maria Silva", order.Pending, nil, 1)
	}

	handler := queries.NewListOrdersQueryHandler(suite.db)
	query, err := queries.NewListOrdersQuery(nil, nil, 2, 2)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(5), result.Total)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_ReturnsFullDetail() {
	ownerID := suite.seedUser("Maria Silva", "maria@example.com")
	seeded := suite.seedOrder("Maria Silva", order.Pending, &ownerID, 2)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	detail, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(seeded.OrderNumber(), detail.OrderNumber)
	suite.Equal("pending", detail.Status)
	suite.Equal("cash", detail.PaymentMethod)
	suite.Require().Len(detail.Items, 1)
	suite.Equal(2, detail.Items[0].Quantity)
	suite.InDelta(51.80, detail.Items[0].TotalPrice, 0.001)
	suite.Require().NotNil(detail.Owner)
	suite.Equal("maria@example.com", detail.Owner.Email)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrdersByStatus_ReturnsOldestFirst() {
	first := suite.seedOrder("Maria Silva", order.Preparing, nil, 1)
	second := suite.seedOrder("Joao Santos", order.Preparing, nil, 1)
	suite.seedOrder("Ana Costa", order.Pending, nil, 1)

	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", first.ID().Bytes()).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrdersByStatusQuery(order.Preparing)
	suite.Require().NoError(err)

	details, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(details, 2)
	suite.Equal(first.OrderNumber(), details[0].OrderNumber)
	suite.Equal(second.OrderNumber(), details[1].OrderNumber)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrdersByUser_ReturnsNewestFirst() {
	ownerID := suite.seedUser("Maria Silva", "maria@example.com")
	older := suite.seedOrder("Maria Silva", order.Delivered, &ownerID, 1)
	newer := suite.seedOrder("Maria Silva", order.Pending, &ownerID, 1)
	suite.seedOrder("Joao Santos", order.Pending, nil, 1)

	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", older.ID().Bytes()).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	handler := queries.NewGetOrdersByUserQueryHandler(suite.db)
	query, err := queries.NewGetOrdersByUserQuery(ownerID)
	suite.Require().NoError(err)

	details, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(details, 2)
	suite.Equal(newer.OrderNumber(), details[0].OrderNumber)
	suite.Equal(older.OrderNumber(), details[1].OrderNumber)
}

// mockAggregateTracker implements the repository's tracker for test purposes.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
