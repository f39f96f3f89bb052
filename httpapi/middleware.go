package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jellydator/ttlcache/v3"

	"rentify/auth"
)

const userContextKey = "current_user"

// userCacheTTL bounds how stale an authenticated user record may be.
// Admin promotion or deletion takes up to this long to reach the
// middleware.
const userCacheTTL = time.Minute

// NewUserCache builds the token-subject cache shared by the auth middleware.
func NewUserCache() *ttlcache.Cache[string, auth.User] {
	return ttlcache.New(
		ttlcache.WithTTL[string, auth.User](userCacheTTL),
		ttlcache.WithDisableTouchOnHit[string, auth.User](),
	)
}

// AuthRequired verifies the bearer token, resolves the subject to a user
// record, and stores it in the request context. Expired and malformed
// tokens both surface as 401; the distinction stays in server logs only.
func AuthRequired(svc *auth.Service, users *ttlcache.Cache[string, auth.User]) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := svc.VerifyToken(token)
		if err != nil {
			detail := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				detail = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
			return
		}

		var user auth.User
		if item := users.Get(userID); item != nil {
			user = item.Value()
		} else {
			user, err = svc.GetUserByID(c.Request.Context(), userID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "User not found"})
				return
			}
			users.Set(userID, user, ttlcache.DefaultTTL)
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminRequired rejects callers whose account lacks the admin flag.
// It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Admin privileges required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) (auth.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return auth.User{}, false
	}
	user, ok := v.(auth.User)
	return user, ok
}
