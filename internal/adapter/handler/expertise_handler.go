package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/services"
)

type ExpertiseHandler struct {
	svc *services.ExpertiseService
	log logrus.FieldLogger
}

func NewExpertiseHandler(svc *services.ExpertiseService, log logrus.FieldLogger) *ExpertiseHandler {
	return &ExpertiseHandler{svc: svc, log: log}
}

func (h *ExpertiseHandler) AddExpertise(c *gin.Context) {
	var req services.AddExpertiseRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.AddExpertise(c.Request.Context(), principal(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ExpertiseHandler) UpdateExpertise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateExpertiseRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.UpdateExpertise(c.Request.Context(), principal(c), id, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ExpertiseHandler) DeleteExpertise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteExpertise(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ExpertiseHandler) ListExpertise(c *gin.Context) {
	resp, err := h.svc.ListExpertise(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
