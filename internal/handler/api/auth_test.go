//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shoestore-api/internal/handler/api"
	resdto "shoestore-api/internal/handler/dto/response"
	"shoestore-api/internal/pkg/config"
	"shoestore-api/internal/pkg/cookie"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/pkg/jwt"
	"shoestore-api/internal/usecase/commands"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	authedUserID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	jwtSvc := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtSvc, config.NewTestConfig().Cookie)

	s.authedUserID = uuid.New()
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Next()
	}

	s.router.POST("/auth/signup", s.handler.Signup)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/forgot-password", s.handler.ForgotPassword)
	s.router.POST("/auth/reset-password", s.handler.ResetPassword)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSignup
// ================================================================================

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"

	reqBody := builder.NewAuthBuilder().BuildSignupDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	returnPair := &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}

	s.Run("success: returns 201 Created with tokens and cookies", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody.FullName, reqBody.Email, reqBody.Password).
			Return(returnUser, returnPair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("access-token", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)

		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
		s.NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "missing full_name", mutate: testutil.Field("full_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "password too short", mutate: testutil.Field("password", "short"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "email already registered",
				commandsError:  commands.ErrEmailAlreadyRegistered,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email already registered",
			},
			{
				name:           "domain validation error",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request data",
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
				s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody.FullName, reqBody.Email, reqBody.Password).
					Return(nil, nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildLoginDTO()
	creds, err := reqBody.ToDomain()
	s.Require().NoError(err)
	returnUser := builder.NewUserBuilder().BuildReadModel()
	returnPair := &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}

	s.Run("success: returns 200 OK with tokens and cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), creds).
			Return(returnUser, returnPair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("access-token", response.AccessToken)
		s.NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), creds).
			Return(nil, nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestRefresh
// ================================================================================

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	returnPair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	s.Run("success: reads the refresh token from the cookie", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "cookie-refresh").
			Return(returnPair, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("success: falls back to the request body", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "body-refresh").
			Return(returnPair, nil).Times(1)

		body := map[string]string{"refresh_token": "body-refresh"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 Unauthorized for rejected token", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "expired").
			Return(nil, commands.ErrInvalidRefreshToken).Times(1)

		body := map[string]string{"refresh_token": "expired"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

// ================================================================================
// TestLogout
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: returns 204 and expires both cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Negative(access.MaxAge)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated user", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		returnUser.ID = s.authedUserID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.authedUserID, response.ID)
		s.Equal(returnUser.Email, response.Email)
	})

	s.Run("error: 404 Not Found when the account no longer exists", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestForgotPassword
// ================================================================================

func (s *AuthHandlerTestSuite) TestForgotPassword() {
	url := "/auth/forgot-password"

	s.Run("success: same reply for any well-formed email", func() {
		s.mockCommands.EXPECT().RequestPasswordReset(gomock.Any(), "test@example.com").
			Return(nil).Times(1)

		body := map[string]string{"email": "test@example.com"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Contains(response.Message, "If the email is registered")
	})

	s.Run("error: 400 Bad Request for malformed email", func() {
		body := map[string]string{"email": "not-an-email"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestResetPassword
// ================================================================================

func (s *AuthHandlerTestSuite) TestResetPassword() {
	url := "/auth/reset-password"

	reqBody := map[string]string{"token": "reset-token", "new_password": "newpassword123"}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().ConfirmPasswordReset(gomock.Any(), "reset-token", "newpassword123").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Contains(response.Message, "Password has been reset")
	})

	s.Run("error: 400 Bad Request for consumed or unknown token", func() {
		s.mockCommands.EXPECT().ConfirmPasswordReset(gomock.Any(), "reset-token", "newpassword123").
			Return(commands.ErrInvalidResetToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired reset token")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "missing token", mutate: testutil.Field("token", nil), expectCode: http.StatusBadRequest},
			{name: "password too short", mutate: testutil.Field("new_password", "short"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}
