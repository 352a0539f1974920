//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shoestore-api/internal/domain/user"
	"shoestore-api/internal/handler/api"
	reqdto "shoestore-api/internal/handler/dto/request"
	resdto "shoestore-api/internal/handler/dto/response"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/usecase/queries"
	"shoestore-api/tests/common/builder"
	"shoestore-api/tests/common/httptest"
	"shoestore-api/tests/common/testutil"
	commandsmock "shoestore-api/tests/mock/commands"
	queriesmock "shoestore-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	authedUserID uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.authedUserID = uuid.New()
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.CreateOrder)
	s.router.GET("/orders", authMiddleware, s.handler.GetUserOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.DELETE("/orders/:id", authMiddleware, s.handler.CancelOrder)
	s.router.GET("/admin/orders", authMiddleware, s.handler.ListAllOrders)
	s.router.PATCH("/admin/orders/:id/status", authMiddleware, s.handler.UpdateDeliveryStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) createOrderRequest() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Items: []reqdto.OrderLineRequest{
			{ProductID: uuid.New(), Size: "42", Quantity: 1},
		},
	}
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"

	reqBody := s.createOrderRequest()
	returnView := builder.NewOrderBuilder().WithUserID(s.authedUserID).BuildReadModel()

	s.Run("success: returns 201 Created with the persisted order", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.TotalCents, response.TotalCents)
		s.Equal("processing", response.DeliveryStatus)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing items", mutate: testutil.Field("items", nil)},
			{name: "empty items", mutate: testutil.Field("items", []any{})},
			{name: "zero quantity", mutate: testutil.Field("items", []map[string]any{
				{"product_id": uuid.New().String(), "size": "42", "quantity": 0},
			})},
			{name: "missing size", mutate: testutil.Field("items", []map[string]any{
				{"product_id": uuid.New().String(), "quantity": 1},
			})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty order",
				commandsError:  errs.ErrEmptyOrder,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Order must contain at least one item",
			},
			{
				name:           "invalid order line",
				commandsError:  errs.ErrInvalidOrderLine,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid order item",
			},
			{
				name:           "product not found",
				commandsError:  errs.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "domain validation failure",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.authedUserID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetUserOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetUserOrders() {
	url := "/orders"

	s.Run("success: returns the user's orders", func() {
		views := []*queries.OrderView{
			builder.NewOrderBuilder().WithUserID(s.authedUserID).BuildReadModel(),
			builder.NewOrderBuilder().WithUserID(s.authedUserID).WithStatus("delivered").BuildReadModel(),
		}

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: no orders yields an empty list", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID).
			Return([]*queries.OrderView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	s.Run("success: returns 200 OK for the owner", func() {
		view := builder.NewOrderBuilder().WithUserID(s.authedUserID).BuildReadModel()
		view.ID = orderID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID, s.authedUserID, user.RoleCustomer).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})

	s.Run("error: 404 Not Found for missing or foreign order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID, s.authedUserID, user.RoleCustomer).
			Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

// ================================================================================
// TestCancelOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	s.Run("success: returns the removed order", func() {
		view := builder.NewOrderBuilder().WithUserID(s.authedUserID).BuildReadModel()
		view.ID = orderID

		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID, s.authedUserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "order not found",
				commandsError:  errs.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found",
			},
			{
				name:           "order already shipped",
				commandsError:  errs.ErrOrderNotCancellable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Order can no longer be cancelled",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID, s.authedUserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListAllOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestListAllOrders() {
	url := "/admin/orders"

	s.Run("success: returns orders with customer details", func() {
		items := []*queries.AdminOrderListItem{
			{
				OrderView:     *builder.NewOrderBuilder().BuildReadModel(),
				CustomerName:  "Test User",
				CustomerEmail: "test@example.com",
			},
		}

		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.AdminOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Test User", response[0].CustomerName)
		s.Equal("test@example.com", response[0].CustomerEmail)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdateDeliveryStatus
// ================================================================================

func (s *OrderHandlerTestSuite) TestUpdateDeliveryStatus() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String() + "/status"

	reqBody := reqdto.UpdateDeliveryStatusRequest{DeliveryStatus: "shipped"}

	s.Run("success: returns the order with the new status", func() {
		view := builder.NewOrderBuilder().WithStatus("shipped").BuildReadModel()
		view.ID = orderID

		s.mockCommands.EXPECT().UpdateDeliveryStatus(gomock.Any(), orderID, "shipped").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("shipped", response.DeliveryStatus)
	})

	s.Run("error: 400 Bad Request for missing status", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("delivery_status", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "order not found",
				commandsError:  errs.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found",
			},
			{
				name:           "unknown status value",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid delivery status",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateDeliveryStatus(gomock.Any(), orderID, "shipped").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
