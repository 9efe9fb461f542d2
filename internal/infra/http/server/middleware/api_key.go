package middleware

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/gin-gonic/gin"
)

const authorization = "Authorization"

// APIKeyAuth admits the upstream CRUD layer. Keys are stored as hex HMAC-SHA512 digests keyed by the secret.
func APIKeyAuth(hashedAPIKeys []string, secret string) gin.HandlerFunc {
	digests := make([][]byte, 0, len(hashedAPIKeys))
	for _, hashedAPIKey := range hashedAPIKeys {
		digest, err := hex.DecodeString(hashedAPIKey)
		if err != nil {
			continue
		}

		digests = append(digests, digest)
	}

	return func(c *gin.Context) {
		apiKey := c.GetHeader(authorization)

		if apiKey == "" || !isValidAPIKey(apiKey, digests, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key", "code": models.CodeUnauthenticated})
			return
		}

		c.Next()
	}
}

func isValidAPIKey(apiKey string, digests [][]byte, secret string) bool {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(apiKey))
	sum := h.Sum(nil)

	for _, digest := range digests {
		if hmac.Equal(sum, digest) {
			return true
		}
	}

	return false
}
