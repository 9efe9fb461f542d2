package middleware

import (
	"net/http"
	"strconv"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/gin-gonic/gin"
)

const (
	userIDHeader = "X-User-ID"
	teamIDHeader = "X-Team-ID"

	CallerKey = "caller"
)

// Identify reads the caller set by the upstream layer. Requests without a user header pass through anonymously
// and are rejected by the operations that need a caller. A team header is only accepted from a member of that team.
func Identify(roster RosterChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var caller models.Caller

		if raw := c.GetHeader(userIDHeader); raw != "" {
			userID, err := parseID(raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + userIDHeader + " header", "code": models.CodeInvalidRequest})
				return
			}

			caller.UserID = userID
		}

		if raw := c.GetHeader(teamIDHeader); raw != "" {
			teamID, err := parseID(raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + teamIDHeader + " header", "code": models.CodeInvalidRequest})
				return
			}

			caller.TeamID = teamID
		}

		if caller.UserID != 0 && caller.TeamID != 0 {
			isMember, err := roster.IsTeamMember(c.Request.Context(), caller.UserID, caller.TeamID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": models.CodeInternalServerError})
				return
			}

			if !isMember {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user is not a member of team", "code": models.CodeForbidden})
				return
			}

			isAdmin, err := roster.IsTeamAdmin(c.Request.Context(), caller.UserID, caller.TeamID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": models.CodeInternalServerError})
				return
			}

			caller.IsAdmin = isAdmin
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

func CallerFrom(c *gin.Context) models.Caller {
	value, ok := c.Get(CallerKey)
	if !ok {
		return models.Caller{}
	}

	caller, _ := value.(models.Caller)

	return caller
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
