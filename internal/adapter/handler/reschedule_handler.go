package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/services"
)

type RescheduleHandler struct {
	svc *services.RescheduleService
	log logrus.FieldLogger
}

func NewRescheduleHandler(svc *services.RescheduleService, log logrus.FieldLogger) *RescheduleHandler {
	return &RescheduleHandler{svc: svc, log: log}
}

func (h *RescheduleHandler) Propose(c *gin.Context) {
	var req services.ProposeRescheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.Propose(c.Request.Context(), principal(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Accept answers with the rescheduled booking.
func (h *RescheduleHandler) Accept(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.Accept(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RescheduleHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.Reject(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RescheduleHandler) ListForBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.ListForBooking(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
