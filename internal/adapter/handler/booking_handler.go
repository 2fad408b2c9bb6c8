package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/services"
)

type bookingOp func(context.Context, domain.Principal, uuid.UUID) (*domain.Booking, error)

type BookingHandler struct {
	svc *services.BookingService
	log logrus.FieldLogger
}

func NewBookingHandler(svc *services.BookingService, log logrus.FieldLogger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.CreateBooking(c.Request.Context(), principal(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	resp, err := h.svc.ListBookings(c.Request.Context(), principal(c), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.GetBooking(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ApproveBooking(c *gin.Context) { h.transition(c, h.svc.ApproveBooking) }

func (h *BookingHandler) RejectBooking(c *gin.Context) { h.transition(c, h.svc.RejectBooking) }

func (h *BookingHandler) CancelBooking(c *gin.Context) { h.transition(c, h.svc.CancelBooking) }

func (h *BookingHandler) CompleteBooking(c *gin.Context) { h.transition(c, h.svc.CompleteBooking) }

func (h *BookingHandler) transition(c *gin.Context, op bookingOp) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := op(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
