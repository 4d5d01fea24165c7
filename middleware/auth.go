package middleware

import (
	"net/http"
	"strings"

	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// decodedEmailKey is the context key under which VerifyJWT stores the
// authenticated email for downstream handlers and middleware.
const decodedEmailKey = "decodedEmail"

// VerifyJWT authenticates the request from its Authorization header. The
// header must be exactly "Bearer <token>"; anything else is rejected before
// the token is even parsed. On success the embedded email is placed in the
// request context.
func VerifyJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		email, err := utils.EmailFromToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(decodedEmailKey, email)
		c.Next()
	}
}

// DecodedEmail returns the authenticated email set by VerifyJWT.
func DecodedEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(decodedEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
