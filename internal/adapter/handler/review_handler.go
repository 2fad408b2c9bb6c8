package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/services"
)

type ReviewHandler struct {
	svc *services.ReviewService
	log logrus.FieldLogger
}

func NewReviewHandler(svc *services.ReviewService, log logrus.FieldLogger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: log}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.CreateReview(c.Request.Context(), principal(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewHandler) GetForBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.GetForBooking(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) ListForMentor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.ListForMentor(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
