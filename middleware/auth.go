package middleware

import (
	"errors"
	"net/http"

	"doctorportal/services/auth"

	"github.com/gin-gonic/gin"
)

const authEmailKey = "authEmail"

// JWTAuthMiddleware guards protected routes. The gate's Verify runs and
// completes before any protected handler executes: a missing credential is
// 401, an invalid or expired one is 403, both with static bodies.
func JWTAuthMiddleware(gate auth.AccessGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := gate.Verify(c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Set(authEmailKey, email)
		c.Next()
	}
}

// AuthEmail returns the identity the gate decoded for this request.
func AuthEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(authEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
