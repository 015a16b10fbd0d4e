package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"melodex/auth"
	"melodex/models"
)

// AuthHeader is the custom header the mobile client sends tokens in.
const AuthHeader = "x-auth-token"

const userKey = "current_user"

// Auth verifies the x-auth-token header, resolves it to a stored user and
// stashes the identity in the request context. Missing, unparseable and
// expired tokens are all rejected with the same 401 body.
func Auth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader(AuthHeader)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no auth token, access denied"})
			return
		}

		claims, err := svc.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token verification failed, authorization denied"})
			return
		}

		user, err := svc.GetUser(claims.UserID)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
			}
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth, nil outside an
// authenticated request.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
