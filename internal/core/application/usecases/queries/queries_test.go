package queries_test

import (
	"context"
	"testing"

	"ordertracker/internal/adapters/out/memory/orderrepo"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *orderrepo.MemoryOrderRepository
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = orderrepo.NewMemoryOrderRepository()
}

func (suite *OrderQueriesTestSuite) TestGetAllOrders() {
	_, err := suite.repo.Create(suite.ctx, "third", order.Delivered)
	suite.Require().NoError(err)

	handler := queries.NewGetAllOrdersQueryHandler(suite.repo)
	orders, err := handler.Handle(suite.ctx, queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(int64(0), orders[0].ID())
	suite.Equal(int64(1), orders[1].ID())
	suite.Equal(int64(2), orders[2].ID())
}

func (suite *OrderQueriesTestSuite) TestGetAllOrdersRejectsZeroQuery() {
	handler := queries.NewGetAllOrdersQueryHandler(suite.repo)
	_, err := handler.Handle(suite.ctx, queries.GetAllOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func (suite *OrderQueriesTestSuite) TestGetOrder() {
	handler := queries.NewGetOrderQueryHandler(suite.repo)

	o, err := handler.Handle(suite.ctx, queries.NewGetOrderQuery(1))
	suite.Require().NoError(err)
	suite.Equal("Second order", o.Title())

	_, err = handler.Handle(suite.ctx, queries.NewGetOrderQuery(-1))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = handler.Handle(suite.ctx, queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *OrderQueriesTestSuite) TestCountOrdersByStatus() {
	_, _ = suite.repo.Create(suite.ctx, "a", order.Processing)
	_, _ = suite.repo.Create(suite.ctx, "b", order.Processing)

	handler := queries.NewCountOrdersByStatusQueryHandler(suite.repo)
	resp, err := handler.Handle(suite.ctx, queries.NewCountOrdersByStatusQuery())

	suite.Require().NoError(err)
	suite.Equal(4, resp.Total)
	suite.Equal(map[order.Status]int{
		order.Processing: 3,
		order.InTransit:  1,
		order.Delivered:  0,
	}, resp.ByStatus)
}

func (suite *OrderQueriesTestSuite) TestCountOrdersByStatusTotalMatchesStoreCount() {
	_, _ = suite.repo.Create(suite.ctx, "c", order.Delivered)

	handler := queries.NewCountOrdersByStatusQueryHandler(suite.repo)
	resp, err := handler.Handle(suite.ctx, queries.NewCountOrdersByStatusQuery())
	suite.Require().NoError(err)

	count, err := suite.repo.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(count, resp.Total)
	suite.Equal(1, resp.ByStatus[order.Delivered])
}

func (suite *OrderQueriesTestSuite) TestCountOrdersByStatusRejectsZeroQuery() {
	handler := queries.NewCountOrdersByStatusQueryHandler(suite.repo)
	_, err := handler.Handle(suite.ctx, queries.CountOrdersByStatusQuery{})

	suite.Require().ErrorIs(err, queries.ErrCountOrdersByStatusQueryIsNotConstructed)
}
