package api

import (
	"errors"
	"net/http"

	reqdto "shoestore-api/internal/handler/dto/request"
	resdto "shoestore-api/internal/handler/dto/response"
	"shoestore-api/internal/handler/middleware"
	"shoestore-api/internal/pkg/config"
	"shoestore-api/internal/pkg/cookie"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/pkg/jwt"
	"shoestore-api/internal/usecase/commands"
	"shoestore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtSvc       *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtSvc *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtSvc:       jwtSvc,
		cookieCfg:    cookieCfg,
	}
}

// @Summary Customer signup
// @Description Register a new customer account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	user, pair, err := h.authCommands.Signup(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusCreated, resdto.AuthResponse{
		AccessToken: pair.AccessToken,
		User:        user,
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	creds, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	user, pair, err := h.authCommands.Login(c.Request.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken: pair.AccessToken,
		User:        user,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	// Cookie first, body fallback for non-browser clients
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token required",
		})
		return
	}

	pair, err := h.authCommands.Refresh(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRefreshToken):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired refresh token",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{
		AccessToken: pair.AccessToken,
	})
}

// @Summary User logout
// @Description Clear session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	user, err := h.userQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Request password reset
// @Description Send a single-use reset token to the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.authCommands.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Same reply whether or not the address exists
	c.JSON(http.StatusOK, resdto.MessageResponse{
		Message: "If the email is registered, a reset link has been sent",
	})
}

// @Summary Reset password
// @Description Set a new password using a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.authCommands.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidResetToken):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or expired reset token",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{
		Message: "Password has been reset",
	})
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(
		c, h.cookieCfg,
		pair.AccessToken, pair.RefreshToken,
		h.jwtSvc.AccessTokenDuration(), h.jwtSvc.RefreshTokenDuration(),
	)
}
