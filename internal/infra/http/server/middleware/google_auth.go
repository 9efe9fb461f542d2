package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// ValidateGoogleAuth admits Cloud Tasks callbacks. When serviceAccountEmail is set the token must also be issued
// to that account.
func ValidateGoogleAuth(targetAudience, serviceAccountEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorization)
		if authHeader == "" {
			unauthenticated(c, "missing authorization header")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			unauthenticated(c, "invalid token format")
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), token, targetAudience)
		if err != nil {
			unauthenticated(c, fmt.Sprintf("invalid google token: %s", err.Error()))
			return
		}

		if serviceAccountEmail != "" {
			email, _ := payload.Claims["email"].(string)
			if email != serviceAccountEmail {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token is issued to another account", "code": models.CodeForbidden})
				return
			}
		}

		c.Next()
	}
}

func unauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "code": models.CodeUnauthenticated})
}
