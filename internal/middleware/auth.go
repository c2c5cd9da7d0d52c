package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridepoolhq/carpool-backend/internal/ledger"
	"github.com/ridepoolhq/carpool-backend/pkg/utils"
)

// AuthMiddleware requires a valid bearer token and puts the authenticated
// user id into the context under "userId". Anything short of that answers
// auth_required.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(ledger.ErrAuthRequired.Status, gin.H{"error": ledger.ErrAuthRequired.Code})
			c.Abort()
			return
		}

		userID, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			c.JSON(ledger.ErrAuthRequired.Status, gin.H{"error": ledger.ErrAuthRequired.Code})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
