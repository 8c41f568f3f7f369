package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint.
// Returns the parsed value and sends an error response if parsing fails.
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid podcast ID format",
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind the JSON request body to target.
// Returns false and sends an error response if binding fails.
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
		})
		return false
	}
	return true
}

// SendError maps a service error to the uniform error payload
func SendError(c *gin.Context, err error) {
	c.JSON(errors.GetHTTPCode(err), ErrorResponse{
		Status:  StatusError,
		Message: errors.GetMessage(err),
	})
}
