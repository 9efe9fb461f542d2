package handler

import (
	"context"
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/timer"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
)

type TimerHandler struct {
	timerService TimerService
}

func NewTimerHandler(timerService TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

func (h *TimerHandler) Clock(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	clock, err := h.timerService.Clock(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clockFromDomain(*clock))
}

func (h *TimerHandler) Configure(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	var params ConfigureTimerRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	clock, err := h.timerService.Configure(c.Request.Context(), middleware.CallerFrom(c), params.ToDomain(uri.ID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clockFromDomain(*clock))
}

func (h *TimerHandler) Start(c *gin.Context) {
	h.control(c, h.timerService.Start)
}

func (h *TimerHandler) Pause(c *gin.Context) {
	h.control(c, h.timerService.Pause)
}

func (h *TimerHandler) NextPhase(c *gin.Context) {
	h.control(c, h.timerService.NextPhase)
}

func (h *TimerHandler) control(c *gin.Context, action func(context.Context, models.Caller, uint) (*timer.MatchClock, error)) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	clock, err := action(c.Request.Context(), middleware.CallerFrom(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clockFromDomain(*clock))
}
