package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/libman/internal/records"
	"github.com/mrlokans/libman/internal/validation"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"` // the offending field, when known
}

// SuccessResponse is the standard shape for successful writes.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondCreated sends a 201 Created response wrapping the inserted row.
func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: message, Data: data})
}

// respondInternalError logs the error and sends a 500 response. The actual
// error is only exposed to the client when expose is set (non-production).
func respondInternalError(c *gin.Context, err error, context string, expose bool) {
	log.Printf("Internal error (%s): %v", context, err)
	msg := "internal server error"
	if expose {
		if cause := errors.Unwrap(err); cause != nil {
			msg = "internal server error: " + cause.Error()
		} else {
			msg = "internal server error: " + err.Error()
		}
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

// respondDomainError maps a record-service failure onto the HTTP contract:
// validation and referential problems are 400s, duplicates are 409s,
// storage-limit hits are 400s, anything else is an opaque 500.
func respondDomainError(c *gin.Context, err error, context string, expose bool) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
		return
	}

	var rerr *records.ReferentialError
	if errors.As(err, &rerr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: rerr.Error(), Field: rerr.Field})
		return
	}

	var derr *records.DuplicateError
	if errors.As(err, &derr) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: derr.Error(), Field: derr.Field})
		return
	}

	var lerr *records.StorageLimitError
	if errors.As(err, &lerr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: lerr.Error()})
		return
	}

	respondInternalError(c, err, context, expose)
}
