package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"shoestore-api/internal/domain/user"
	"shoestore-api/internal/handler/httperr"
	"shoestore-api/internal/pkg/cookie"
	"shoestore-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator is the subset of the token service the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var (
	errMissingToken = errors.New("access token missing")
	errInvalidToken = errors.New("invalid or expired access token")
	errForbidden    = errors.New("insufficient role")
	errNoAuthState  = errors.New("auth context missing")
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access token from the auth cookie first, then from
// a Bearer header. Refresh tokens are rejected here even though they verify.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, errMissingToken, "Access token required")
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token")
			return
		}
		if claims.TokenType != jwt.TokenTypeAccess {
			httperr.Abort(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token")
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected: should be used after RequireAuth()
			httperr.Abort(c, http.StatusInternalServerError, errNoAuthState, "Internal server error")
			return
		}

		if role != user.RoleAdmin {
			httperr.Abort(c, http.StatusForbidden, errForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
