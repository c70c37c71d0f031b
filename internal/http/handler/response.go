package handler

import "github.com/gin-gonic/gin"

// ErrorResponse is the uniform error shape for every endpoint.
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message, StatusCode: status})
}
