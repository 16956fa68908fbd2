package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental/internal/dataset"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps dataset/service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Malformed records - Bad Request
	case errors.Is(err, dataset.ErrInvalidInput):
		return http.StatusBadRequest

	// Dangling references inside the submitted batch
	case errors.Is(err, dataset.ErrNotFound):
		return http.StatusUnprocessableEntity

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
