package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tambula/internal/pkg/jwt"
	"tambula/internal/pkg/response"
)

const ContextUsernameKey = "username"

// JWTAuth gates a route group on a valid bearer token. Verification is
// purely stateless: there is no revocation list to consult, so a token
// stays usable until its signature stops checking out.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "invalid authorization")
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
