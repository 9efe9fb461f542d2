package handler

import (
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/gin-gonic/gin"
)

type TriggerHandler struct {
	deliveryService NotificationDeliveryService
}

func NewTriggerHandler(deliveryService NotificationDeliveryService) *TriggerHandler {
	return &TriggerHandler{deliveryService: deliveryService}
}

func (h *TriggerHandler) DeliverNotification(c *gin.Context) {
	var params models.Notification
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.deliveryService.Deliver(c.Request.Context(), params); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
