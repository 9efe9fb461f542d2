package middleware

import (
	"net/http"
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
)

func Timeout(t time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(t),
		timeout.WithResponse(TimeoutResponse),
	)
}

func TimeoutResponse(c *gin.Context) {
	c.JSON(http.StatusRequestTimeout, gin.H{"error": "timeout", "code": models.CodeTimeout})
}
