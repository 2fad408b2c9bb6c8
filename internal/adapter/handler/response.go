package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

type errorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []fieldIssue `json:"details,omitempty"`
}

type fieldIssue struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// respondError writes the coded body for err. Anything that is not a domain
// error is logged and reported as a bare 500.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	if de, ok := domain.AsError(err); ok {
		c.AbortWithStatusJSON(de.Status, errorResponse{Error: de.Message, Code: de.Code})
		return
	}

	log.WithError(err).WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"path":       c.FullPath(),
	}).Error("request failed")

	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
		Error: "internal server error",
		Code:  "INTERNAL_ERROR",
	})
}

// bindJSON decodes the body into req and answers 400 on failure. Validator
// failures are reported per field.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	body := errorResponse{Error: "invalid request body", Code: domain.ErrValidation.Code}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		body.Error = "validation failed"
		for _, fe := range verrs {
			body.Details = append(body.Details, fieldIssue{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, body)
	return false
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid id",
			Code:    domain.ErrValidation.Code,
			Details: []fieldIssue{{Field: name, Rule: "uuid"}},
		})
		return uuid.Nil, false
	}
	return id, true
}
