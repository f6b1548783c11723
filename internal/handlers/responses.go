package handlers

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

// SuccessResponse represents a plain success response
type SuccessResponse struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errCode, message, code string) {
	c.JSON(status, ErrorResponse{
		Error:   errCode,
		Message: message,
		Code:    code,
	})
}
