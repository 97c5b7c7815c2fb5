package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"rental-backend/internal/domain"
	"rental-backend/internal/http/middleware"
	"rental-backend/internal/storage"
	"rental-backend/internal/utils"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// FieldError is one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

func respondNotFound(c *gin.Context, resource string, id domain.ID) {
	err := domain.NotFoundError{Resource: resource, ID: id}
	respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
}

// RespondDomainError maps domain errors to HTTP responses. Unexpected errors
// are logged with the request id and hidden from the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case storage.IsDisabled(err):
		respondError(c, http.StatusServiceUnavailable, "storage_disabled", err.Error(), nil)
	default:
		utils.LogError(middleware.GetRequestID(c), "http", c.Request.Method+" "+c.FullPath(), "unhandled error", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

// respondBindError reports malformed bodies and failed binding rules as 400.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Namespace(), Rule: fe.Tag(), Param: fe.Param()})
		}
		respondError(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("%d field(s) failed validation", len(details)), details)
		return
	}
	respondError(c, http.StatusBadRequest, "invalid_payload", err.Error(), nil)
}
