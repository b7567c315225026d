package middlewares

import (
	"net/http"
	"strings"

	"github.com/MyLifeUa/rest-api/services"
	"github.com/MyLifeUa/rest-api/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token, resolves the account role
// once and stashes the requester in the context for the handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"state": "Error", "message": "Authorization header required",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"state": "Error", "message": "invalid token",
			})
			return
		}

		requester, err := services.RequesterFor(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"state": "Error", "message": "user not found",
			})
			return
		}

		c.Set("email", email)
		c.Set("role", string(requester.Role))
		c.Set("token", tokenString)
		c.Set("requester", requester)

		c.Next()
	}
}
