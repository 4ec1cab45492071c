package queries_test

import (
	"context"
	"testing"
	"time"

	"packflow/internal/adapters/out/postgres"
	"packflow/internal/adapters/out/postgres/complaintrepo"
	"packflow/internal/adapters/out/postgres/orderrepo"
	"packflow/internal/adapters/out/postgres/userrepo"
	"packflow/internal/core/application/usecases/queries"
	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/complaint"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"
	"packflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// QueriesTestSuite seeds three orders at different points of the workflow and
// two complaints, then reads them back through every query handler.
type QueriesTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB

	actor    *access.Actor
	reviewer kernel.UUID
	creator  kernel.UUID

	newOrder      *order.Order
	acceptedOrder *order.Order
	rejectedOrder *order.Order
}

func (suite *QueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(postgres.Models()...))

	perms, err := access.NewPermissions(nil)
	suite.Require().NoError(err)
	suite.actor, err = access.NewActor(kernel.NewUUID(), "Reader", "reader@example.com", access.Staff, true, perms)
	suite.Require().NoError(err)
}

func (suite *QueriesTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE complaints, order_history, order_items, orders, users CASCADE").Error)

	suite.reviewer, suite.creator = kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(userrepo.NewGormDirectory(suite.db).Upsert(ctx, []userrepo.UserDTO{
		userrepo.NewUserDTO(suite.reviewer.Bytes(), "Alice Reviewer", "alice@example.com", "", "staff", true, nil),
		userrepo.NewUserDTO(suite.creator.Bytes(), "Bob Intake", "bob@example.com", "", "staff", true, nil),
	}))

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})

	suite.newOrder = suite.addOrder(repo, "First", base)
	suite.acceptedOrder = suite.addOrder(repo, "Second", base.Add(time.Hour))
	suite.rejectedOrder = suite.addOrder(repo, "Third", base.Add(2*time.Hour))

	suite.advance(repo, suite.acceptedOrder, order.SAPending, base.Add(3*time.Hour))
	suite.advance(repo, suite.rejectedOrder, order.Rejected, base.Add(4*time.Hour))
}

func (suite *QueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesTestSuite) TestListOrders_Unfiltered_NewestFirst() {
	query, err := queries.NewListOrdersQuery(suite.actor, order.Filter{})
	suite.Require().NoError(err)

	orders, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{suite.rejectedOrder.ID(), suite.acceptedOrder.ID(), suite.newOrder.ID()}, ids(orders))
}

func (suite *QueriesTestSuite) TestListOrders_SameForEveryActor() {
	levels := make(map[access.Section]access.Level)
	for _, s := range access.Sections() {
		levels[s] = access.ReadWrite
	}
	perms, err := access.NewPermissions(levels)
	suite.Require().NoError(err)
	admin, err := access.NewActor(kernel.NewUUID(), "Root", "root@example.com", access.Admin, true, perms)
	suite.Require().NoError(err)

	handler := queries.NewListOrdersQueryHandler(suite.db)
	list := func(actor *access.Actor) []queries.OrderResponse {
		query, qErr := queries.NewListOrdersQuery(actor, order.Filter{})
		suite.Require().NoError(qErr)
		orders, hErr := handler.Handle(context.Background(), query)
		suite.Require().NoError(hErr)
		return orders
	}

	asAdmin := list(admin)
	asReader := list(suite.actor)

	suite.Require().Len(asAdmin, 3)
	suite.Equal(access.NoAccess, suite.actor.Permissions().Level(access.NewOrders))
	suite.Equal(asAdmin, asReader)
}

func (suite *QueriesTestSuite) TestListOrders_NewOrdersBoard_PutsNewFirst() {
	filter, err := order.NewFilter(access.NewOrders, order.FilterAll)
	suite.Require().NoError(err)
	query, err := queries.NewListOrdersQuery(suite.actor, filter)
	suite.Require().NoError(err)

	orders, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{suite.newOrder.ID(), suite.rejectedOrder.ID(), suite.acceptedOrder.ID()}, ids(orders))
}

func (suite *QueriesTestSuite) TestListOrders_StageBoard_ResolvesStamps() {
	filter, err := order.NewFilter(access.SectionA, "pending")
	suite.Require().NoError(err)
	query, err := queries.NewListOrdersQuery(suite.actor, filter)
	suite.Require().NoError(err)

	orders, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	got := orders[0]
	suite.Equal(suite.acceptedOrder.ID(), got.ID)
	suite.Equal(order.SAPending.String(), got.Status)
	suite.Equal("Bob Intake", got.CreatedBy.FullName)
	suite.Require().Contains(got.Stamps, "review")
	suite.Equal("Alice Reviewer", got.Stamps["review"].By.FullName)
	suite.Equal(suite.reviewer, got.Stamps["review"].By.ID)
	suite.NotContains(got.Stamps, "sa")
}

func (suite *QueriesTestSuite) TestGetOrder() {
	ctx := context.Background()
	handler := queries.NewGetOrderQueryHandler(suite.db)

	suite.Run("should return items in submission order with total", func() {
		query, err := queries.NewGetOrderQuery(suite.actor, suite.newOrder.ID())
		suite.Require().NoError(err)

		got, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(got.Items, 2)
		suite.Equal("A", got.Items[0].ItemType)
		suite.Equal("C", got.Items[1].ItemType)
		suite.True(got.Total.Equal(decimal.RequireFromString("148.50")), got.Total.String())
		suite.Empty(got.Stamps)
	})

	suite.Run("should report a missing order", func() {
		query, err := queries.NewGetOrderQuery(suite.actor, kernel.NewUUID())
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)

		suite.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueriesTestSuite) TestOrderHistory() {
	ctx := context.Background()
	handler := queries.NewOrderHistoryQueryHandler(suite.db)

	suite.Run("should list transitions with the actor resolved", func() {
		query, err := queries.NewOrderHistoryQuery(suite.actor, suite.acceptedOrder.ID())
		suite.Require().NoError(err)

		history, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(history, 1)
		suite.Equal("review", history[0].Stage)
		suite.Equal(order.New.String(), history[0].From)
		suite.Equal(order.SAPending.String(), history[0].To)
		suite.Equal("alice@example.com", history[0].By.Email)
	})

	suite.Run("should be empty for an order that never moved", func() {
		query, err := queries.NewOrderHistoryQuery(suite.actor, suite.newOrder.ID())
		suite.Require().NoError(err)

		history, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Empty(history)
	})

	suite.Run("should report a missing order", func() {
		query, err := queries.NewOrderHistoryQuery(suite.actor, kernel.NewUUID())
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)

		suite.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueriesTestSuite) TestOrdersSummary() {
	ctx := context.Background()
	handler := queries.NewOrdersSummaryQueryHandler(suite.db)

	query, err := queries.NewOrdersSummaryQuery(suite.actor, access.NewOrders)
	suite.Require().NoError(err)
	summary, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(3, summary.Total)
	suite.Equal(map[string]int{"new": 1, "accepted": 1, "rejected": 1, "all": 3}, summary.Counts)

	query, err = queries.NewOrdersSummaryQuery(suite.actor, access.SectionA)
	suite.Require().NoError(err)
	summary, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(map[string]int{"pending": 1, "done": 0, "failed": 0, "all": 1}, summary.Counts)
}

func (suite *QueriesTestSuite) TestListComplaints() {
	ctx := context.Background()
	repo := complaintrepo.NewGormComplaintRepository(suite.db, noopTracker{})
	base := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)

	open, err := complaint.NewComplaint(kernel.NewUUID(), suite.newOrder.ID(), access.NewOrders,
		"wrong phone", suite.creator, base)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, open))

	resolved, err := complaint.NewComplaint(kernel.NewUUID(), suite.acceptedOrder.ID(), access.SectionA,
		"scratched", suite.creator, base.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, resolved))
	stamp, err := kernel.NewStamp(suite.reviewer, base.Add(2*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(resolved.Resolve(stamp))
	suite.Require().NoError(repo.Update(ctx, resolved, complaint.Open))

	handler := queries.NewListComplaintsQueryHandler(suite.db)

	suite.Run("should list all newest first", func() {
		query, qErr := queries.NewListComplaintsQuery(suite.actor, "")
		suite.Require().NoError(qErr)

		got, hErr := handler.Handle(ctx, query)

		suite.Require().NoError(hErr)
		suite.Require().Len(got, 2)
		suite.Equal(resolved.ID(), got[0].ID)
		suite.Equal("Second", got[0].Order.CustomerName)
		suite.Require().NotNil(got[0].Resolved)
		suite.Equal("Alice Reviewer", got[0].Resolved.By.FullName)
		suite.Equal(open.ID(), got[1].ID)
		suite.Nil(got[1].Resolved)
		suite.Equal("Bob Intake", got[1].CreatedBy.FullName)
	})

	suite.Run("should filter by status", func() {
		query, qErr := queries.NewListComplaintsQuery(suite.actor, "open")
		suite.Require().NoError(qErr)

		got, hErr := handler.Handle(ctx, query)

		suite.Require().NoError(hErr)
		suite.Require().Len(got, 1)
		suite.Equal(open.ID(), got[0].ID)
	})

	suite.Run("should get one complaint with its resolver", func() {
		query, qErr := queries.NewGetComplaintQuery(suite.actor, resolved.ID())
		suite.Require().NoError(qErr)

		got, hErr := queries.NewGetComplaintQueryHandler(suite.db).Handle(ctx, query)

		suite.Require().NoError(hErr)
		suite.Equal(resolved.ID(), got.ID)
		suite.Equal("resolved", got.Status)
		suite.Equal(suite.acceptedOrder.ID(), got.Order.ID)
		suite.Require().NotNil(got.Resolved)
		suite.Equal("alice@example.com", got.Resolved.By.Email)
	})

	suite.Run("should report a missing complaint", func() {
		query, qErr := queries.NewGetComplaintQuery(suite.actor, kernel.NewUUID())
		suite.Require().NoError(qErr)

		_, hErr := queries.NewGetComplaintQueryHandler(suite.db).Handle(ctx, query)

		suite.ErrorIs(hErr, errs.ErrObjectNotFound)
	})
}

func (suite *QueriesTestSuite) addOrder(repo *orderrepo.GormOrderRepository, name string, at time.Time) *order.Order {
	mugs, err := order.NewItem(order.ItemTypeA, 3, decimal.RequireFromString("9.50"), "mugs", "")
	suite.Require().NoError(err)
	frames, err := order.NewItem(order.ItemTypeC, 1, decimal.RequireFromString("120.00"), "frames", "")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), name, "555-0100", []order.Item{mugs, frames}, suite.creator, at)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(context.Background(), o))
	o.ClearDomainEvents()
	return o
}

func (suite *QueriesTestSuite) advance(
	repo *orderrepo.GormOrderRepository, o *order.Order, target order.Status, at time.Time,
) {
	stamp, err := kernel.NewStamp(suite.reviewer, at)
	suite.Require().NoError(err)
	expected := o.Status()
	suite.Require().NoError(o.Advance(order.Review, target, stamp))
	suite.Require().NoError(repo.Update(context.Background(), o, expected))
	o.ClearDomainEvents()
}

func ids(orders []queries.OrderResponse) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
