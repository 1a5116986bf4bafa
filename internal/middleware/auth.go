package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/permission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/token"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

// gin context keys
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

var errNoToken = errors.New("no session token")

// Auth reads the session token from the cookie, falling back to a Bearer header
type Auth struct {
	issuer     *token.Issuer
	cookieName string
}

func NewAuth(issuer *token.Issuer, cookieName string) *Auth {
	if cookieName == "" {
		cookieName = "jwt"
	}
	return &Auth{issuer: issuer, cookieName: cookieName}
}

func (a *Auth) CookieName() string {
	return a.cookieName
}

func (a *Auth) parseToken(c *gin.Context) (*token.Identity, error) {
	tokenString, err := c.Cookie(a.cookieName)
	if err != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, errNoToken
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, token.ErrInvalidToken
		}
		tokenString = strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return a.issuer.Verify(tokenString)
}

// RequireAuth strict: reject without a valid token. Non-strict: continue
// anonymously and let handlers apply public rules.
func (a *Auth) RequireAuth(strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := a.parseToken(c)
		if err != nil {
			if !strict {
				c.Next()
				return
			}
			msg := "authentication required"
			if errors.Is(err, token.ErrExpiredToken) {
				msg = "session expired"
			} else if !errors.Is(err, errNoToken) {
				msg = "invalid session"
			}
			dto.ErrorResponse(c, response.ErrUnauthorized(msg))
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUserRole, identity.Role)
		c.Next()
	}
}

// JWTAuth strict authentication
func (a *Auth) JWTAuth() gin.HandlerFunc {
	return a.RequireAuth(true)
}

// OptionalJWTAuth sets the identity when a valid token is present
func (a *Auth) OptionalJWTAuth() gin.HandlerFunc {
	return a.RequireAuth(false)
}

// RequireRoles allows only the listed roles. Must run after JWTAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := CurrentUser(c)
		if !ok {
			dto.ErrorResponse(c, response.ErrUnauthorized("authentication required"))
			return
		}
		if !permission.InRoles(role, roles...) {
			dto.ErrorResponse(c, response.ErrForbidden("insufficient role"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity set by the auth middleware
func CurrentUser(c *gin.Context) (uint, string, bool) {
	rawID, exists := c.Get(ContextUserID)
	if !exists {
		return 0, "", false
	}
	userID, ok := rawID.(uint)
	if !ok || userID == 0 {
		return 0, "", false
	}
	role := c.GetString(ContextUserRole)
	return userID, role, true
}
