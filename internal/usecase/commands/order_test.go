//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shoestore-api/internal/domain/order"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/usecase/commands"
	"shoestore-api/tests/common/builder"
	commandsmock "shoestore-api/tests/mock/commands"
	queriesmock "shoestore-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRepo         *commandsmock.MockOrderRepository
	mockOrderReads   *queriesmock.MockOrderReadStore
	mockProductReads *queriesmock.MockProductReadStore
	commands         commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockOrderRepository(s.mockCtrl)
	s.mockOrderReads = queriesmock.NewMockOrderReadStore(s.mockCtrl)
	s.mockProductReads = queriesmock.NewMockProductReadStore(s.mockCtrl)
	s.commands = commands.NewOrderCommands(s.mockRepo, s.mockOrderReads, s.mockProductReads)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	userID := uuid.New()

	productView := builder.NewProductBuilder().WithPriceCents(9900).BuildReadModel()
	lines := []commands.CreateOrderLine{
		{ProductID: productView.ID, Size: "42", Quantity: 2},
	}

	s.Run("success: snapshots the stored price and returns the persisted row", func() {
		orderID := uuid.New()
		persisted := builder.NewOrderBuilder().WithUserID(userID).BuildReadModel()
		persisted.ID = orderID

		s.mockProductReads.EXPECT().FindByID(ctx, productView.ID).
			Return(productView, nil).Times(1)
		s.mockRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) (uuid.UUID, error) {
				s.Require().Len(o.Lines(), 1)
				s.Equal(int64(9900), o.Lines()[0].PriceAtPurchaseCents)
				s.Equal(int32(2), o.Lines()[0].Quantity)
				s.Equal(int64(19800), o.TotalCents())
				s.True(o.IsOwnedBy(userID))
				return orderID, nil
			}).Times(1)
		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(persisted, nil).Times(1)

		view, err := s.commands.Create(ctx, userID, lines)
		s.NoError(err)
		s.Equal(persisted, view)
	})

	s.Run("error: empty order rejected before any lookup", func() {
		_, err := s.commands.Create(ctx, userID, nil)
		s.ErrorIs(err, errs.ErrEmptyOrder)
	})

	s.Run("error: malformed lines rejected before any lookup", func() {
		badLines := []struct {
			name string
			line commands.CreateOrderLine
		}{
			{name: "nil product id", line: commands.CreateOrderLine{Size: "42", Quantity: 1}},
			{name: "missing size", line: commands.CreateOrderLine{ProductID: uuid.New(), Quantity: 1}},
			{name: "zero quantity", line: commands.CreateOrderLine{ProductID: uuid.New(), Size: "42"}},
			{name: "negative quantity", line: commands.CreateOrderLine{ProductID: uuid.New(), Size: "42", Quantity: -3}},
		}
		for _, tc := range badLines {
			s.Run(tc.name, func() {
				_, err := s.commands.Create(ctx, userID, []commands.CreateOrderLine{tc.line})
				s.ErrorIs(err, errs.ErrInvalidOrderLine)
			})
		}
	})

	s.Run("error: unknown product fails the whole order", func() {
		missing := uuid.New()
		twoLines := []commands.CreateOrderLine{
			{ProductID: productView.ID, Size: "42", Quantity: 1},
			{ProductID: missing, Size: "43", Quantity: 1},
		}

		s.mockProductReads.EXPECT().FindByID(ctx, productView.ID).
			Return(productView, nil).Times(1)
		s.mockProductReads.EXPECT().FindByID(ctx, missing).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Create(ctx, userID, twoLines)
		s.ErrorIs(err, errs.ErrProductNotFound)
	})

	s.Run("error: repository failure surfaces as database error", func() {
		s.mockProductReads.EXPECT().FindByID(ctx, productView.ID).
			Return(productView, nil).Times(1)
		s.mockRepo.EXPECT().Create(ctx, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", nil)).Times(1)

		_, err := s.commands.Create(ctx, userID, lines)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}

func (s *OrderCommandsTestSuite) TestUpdateDeliveryStatus() {
	ctx := context.Background()
	orderID := uuid.New()

	s.Run("success: persists and reflects the new status", func() {
		view := builder.NewOrderBuilder().WithStatus("processing").BuildReadModel()
		view.ID = orderID

		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(view, nil).Times(1)
		s.mockRepo.EXPECT().UpdateDeliveryStatus(ctx, orderID, order.StatusShipped).
			Return(nil).Times(1)

		updated, err := s.commands.UpdateDeliveryStatus(ctx, orderID, "shipped")
		s.NoError(err)
		s.Equal("shipped", updated.DeliveryStatus)
	})

	s.Run("success: terminal statuses can be reopened", func() {
		view := builder.NewOrderBuilder().WithStatus("cancelled").BuildReadModel()
		view.ID = orderID

		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(view, nil).Times(1)
		s.mockRepo.EXPECT().UpdateDeliveryStatus(ctx, orderID, order.StatusProcessing).
			Return(nil).Times(1)

		updated, err := s.commands.UpdateDeliveryStatus(ctx, orderID, "processing")
		s.NoError(err)
		s.Equal("processing", updated.DeliveryStatus)
	})

	s.Run("error: unknown status rejected without a read", func() {
		_, err := s.commands.UpdateDeliveryStatus(ctx, orderID, "pending")
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("error: missing order", func() {
		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.UpdateDeliveryStatus(ctx, orderID, "shipped")
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}

func (s *OrderCommandsTestSuite) TestCancel() {
	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	s.Run("success: deletes the row and returns the removed view", func() {
		view := builder.NewOrderBuilder().WithUserID(userID).WithStatus("processing").BuildReadModel()
		view.ID = orderID

		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(view, nil).Times(1)
		s.mockRepo.EXPECT().Delete(ctx, orderID).
			Return(nil).Times(1)

		removed, err := s.commands.Cancel(ctx, orderID, userID)
		s.NoError(err)
		s.Equal(view, removed)
	})

	s.Run("error: another user's order reads as not found", func() {
		view := builder.NewOrderBuilder().WithStatus("processing").BuildReadModel()
		view.ID = orderID

		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(view, nil).Times(1)

		_, err := s.commands.Cancel(ctx, orderID, userID)
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})

	s.Run("error: shipped order is no longer cancellable", func() {
		view := builder.NewOrderBuilder().WithUserID(userID).WithStatus("shipped").BuildReadModel()
		view.ID = orderID

		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(view, nil).Times(1)

		_, err := s.commands.Cancel(ctx, orderID, userID)
		s.ErrorIs(err, errs.ErrOrderNotCancellable)
	})

	s.Run("error: missing order", func() {
		s.mockOrderReads.EXPECT().FindByID(ctx, orderID).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Cancel(ctx, orderID, userID)
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}
