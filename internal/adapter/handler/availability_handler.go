package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/services"
)

type AvailabilityHandler struct {
	svc *services.SlotService
	log logrus.FieldLogger
}

func NewAvailabilityHandler(svc *services.SlotService, log logrus.FieldLogger) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, log: log}
}

func (h *AvailabilityHandler) CreateSlot(c *gin.Context) {
	var req services.CreateSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.CreateSlot(c.Request.Context(), principal(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AvailabilityHandler) UpdateSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.UpdateSlot(c.Request.Context(), principal(c), id, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AvailabilityHandler) CancelSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.CancelSlot(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AvailabilityHandler) ListMySlots(c *gin.Context) {
	resp, err := h.svc.ListMySlots(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAvailable is public: mentees browse a mentor's open slots before booking.
func (h *AvailabilityHandler) ListAvailable(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.ListAvailable(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
