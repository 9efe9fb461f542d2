package handler

import (
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
)

type RefereeHandler struct {
	refereeService RefereeService
}

func NewRefereeHandler(refereeService RefereeService) *RefereeHandler {
	return &RefereeHandler{refereeService: refereeService}
}

func (h *RefereeHandler) Get(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	assignment, err := h.refereeService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, refereeFromDomain(*assignment))
}

func (h *RefereeHandler) Assign(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	var params AssignRefereeRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	assignment, err := h.refereeService.Assign(c.Request.Context(), middleware.CallerFrom(c), params.ToDomain(uri.ID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, refereeFromDomain(*assignment))
}

func (h *RefereeHandler) Approve(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	approval, err := h.refereeService.Approve(c.Request.Context(), middleware.CallerFrom(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, approvalFromDomain(*approval))
}
