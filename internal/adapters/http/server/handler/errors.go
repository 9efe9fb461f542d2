package handler

import (
	"errors"
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.As(err, &models.UnauthenticatedError{}):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": models.CodeUnauthenticated})
	case errors.As(err, &models.ForbiddenError{}):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": models.CodeForbidden})
	case errors.As(err, &models.ResourceNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": models.CodeResourceNotFound})
	case errors.As(err, &models.ExpiredError{}):
		c.JSON(http.StatusGone, gin.H{"error": err.Error(), "code": models.CodeExpired})
	case errors.As(err, &models.ConflictError{}):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": models.CodeConflict})
	case errors.As(err, &models.ResourceAlreadyExistsError{}):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": models.CodeAlreadyExists})
	case errors.As(err, &models.InvalidInputError{}):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": models.CodeUnprocessableContent})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": models.CodeInternalServerError})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": models.CodeInvalidRequest})
}
