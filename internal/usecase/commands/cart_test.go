//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shoestore-api/internal/domain/cart"
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

type CartCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockStore        *commandsmock.MockCartStore
	mockProductReads *queriesmock.MockProductReadStore
	commands         commands.CartCommands
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = commandsmock.NewMockCartStore(s.mockCtrl)
	s.mockProductReads = queriesmock.NewMockProductReadStore(s.mockCtrl)
	s.commands = commands.NewCartCommands(s.mockStore, s.mockProductReads)
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) TestAddLine() {
	ctx := context.Background()
	userID := uuid.New()
	productView := builder.NewProductBuilder().WithPriceCents(8900).BuildReadModel()

	s.Run("success: copies display fields from the catalog and saves", func() {
		s.mockProductReads.EXPECT().FindByID(ctx, productView.ID).
			Return(productView, nil).Times(1)
		s.mockStore.EXPECT().Load(ctx, userID).
			Return(cart.New(), nil).Times(1)
		s.mockStore.EXPECT().Save(ctx, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, c *cart.Cart) error {
				s.Require().Len(c.Lines, 1)
				s.Equal(productView.ID, c.Lines[0].ProductID)
				s.Equal(productView.Name, c.Lines[0].Name)
				s.Equal(productView.Images[0], c.Lines[0].Image)
				s.Equal(int64(8900), c.Lines[0].PriceCents)
				return nil
			}).Times(1)

		result, err := s.commands.AddLine(ctx, userID, productView.ID, "42", 2)
		s.NoError(err)
		s.Equal(int32(2), result.Count())
	})

	s.Run("success: same product and size merges into one line", func() {
		existing := cart.New()
		_, err := existing.AddLine(productView.ID, productView.Name, productView.Images[0], 8900, 1, "42")
		s.Require().NoError(err)

		s.mockProductReads.EXPECT().FindByID(ctx, productView.ID).
			Return(productView, nil).Times(1)
		s.mockStore.EXPECT().Load(ctx, userID).
			Return(existing, nil).Times(1)
		s.mockStore.EXPECT().Save(ctx, userID, gomock.Any()).
			Return(nil).Times(1)

		result, err := s.commands.AddLine(ctx, userID, productView.ID, "42", 2)
		s.NoError(err)
		s.Len(result.Lines, 1)
		s.Equal(int32(3), result.Lines[0].Quantity)
	})

	s.Run("error: unknown product", func() {
		missing := uuid.New()
		s.mockProductReads.EXPECT().FindByID(ctx, missing).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.AddLine(ctx, userID, missing, "42", 1)
		s.ErrorIs(err, errs.ErrProductNotFound)
	})

	s.Run("error: non-positive quantity never reaches the store", func() {
		s.mockProductReads.EXPECT().FindByID(ctx, productView.ID).
			Return(productView, nil).Times(1)
		s.mockStore.EXPECT().Load(ctx, userID).
			Return(cart.New(), nil).Times(1)

		_, err := s.commands.AddLine(ctx, userID, productView.ID, "42", 0)
		s.ErrorIs(err, errs.ErrInvalidQuantity)
	})
}

func (s *CartCommandsTestSuite) TestSetQuantity() {
	ctx := context.Background()
	userID := uuid.New()

	loadedWithLine := func() (*cart.Cart, uuid.UUID) {
		c := cart.New()
		line, err := c.AddLine(uuid.New(), "Runner Classic", "", 12900, 2, "42")
		s.Require().NoError(err)
		return c, line.ID
	}

	s.Run("success: replaces the quantity and saves", func() {
		loaded, lineID := loadedWithLine()

		s.mockStore.EXPECT().Load(ctx, userID).
			Return(loaded, nil).Times(1)
		s.mockStore.EXPECT().Save(ctx, userID, gomock.Any()).
			Return(nil).Times(1)

		result, err := s.commands.SetQuantity(ctx, userID, lineID, 5)
		s.NoError(err)
		s.Equal(int32(5), result.Lines[0].Quantity)
	})

	s.Run("success: zero removes the line", func() {
		loaded, lineID := loadedWithLine()

		s.mockStore.EXPECT().Load(ctx, userID).
			Return(loaded, nil).Times(1)
		s.mockStore.EXPECT().Save(ctx, userID, gomock.Any()).
			Return(nil).Times(1)

		result, err := s.commands.SetQuantity(ctx, userID, lineID, 0)
		s.NoError(err)
		s.Empty(result.Lines)
	})

	s.Run("error: unknown line", func() {
		s.mockStore.EXPECT().Load(ctx, userID).
			Return(cart.New(), nil).Times(1)

		_, err := s.commands.SetQuantity(ctx, userID, uuid.New(), 3)
		s.ErrorIs(err, errs.ErrCartLineNotFound)
	})

	s.Run("error: negative quantity", func() {
		loaded, lineID := loadedWithLine()

		s.mockStore.EXPECT().Load(ctx, userID).
			Return(loaded, nil).Times(1)

		_, err := s.commands.SetQuantity(ctx, userID, lineID, -1)
		s.ErrorIs(err, errs.ErrInvalidQuantity)
	})
}

func (s *CartCommandsTestSuite) TestRemoveLine() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("success: removing an absent line still saves and succeeds", func() {
		s.mockStore.EXPECT().Load(ctx, userID).
			Return(cart.New(), nil).Times(1)
		s.mockStore.EXPECT().Save(ctx, userID, gomock.Any()).
			Return(nil).Times(1)

		result, err := s.commands.RemoveLine(ctx, userID, uuid.New())
		s.NoError(err)
		s.Empty(result.Lines)
	})
}

func (s *CartCommandsTestSuite) TestClear() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("success: drops the stored cart and returns an empty one", func() {
		s.mockStore.EXPECT().Delete(ctx, userID).
			Return(nil).Times(1)

		result, err := s.commands.Clear(ctx, userID)
		s.NoError(err)
		s.Empty(result.Lines)
		s.Equal(int64(0), result.TotalCents())
	})

	s.Run("error: store failure surfaces as database error", func() {
		s.mockStore.EXPECT().Delete(ctx, userID).
			Return(infra.WrapRepoErr("redis del failed", nil)).Times(1)

		_, err := s.commands.Clear(ctx, userID)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
