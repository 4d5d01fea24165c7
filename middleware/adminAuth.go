package middleware

import (
	"net/http"

	userRepo "medibook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// VerifyAdmin layers a role check on top of VerifyJWT: the authenticated
// email must belong to an existing user with the admin role. Runs after
// VerifyJWT in the chain; a valid identity without the role is 403, never
// 401, so the two failures stay distinguishable to clients.
func VerifyAdmin(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := DecodedEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Next()
	}
}
