package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

// Recovery turns panics into a generic 500; the panic value is logged by
// dto.ErrorResponse and never sent to the client
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		dto.ErrorResponse(c, response.ErrInternal(fmt.Errorf("panic: %v", recovered)))
	})
}

// NotFound JSON 404 for unknown routes
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		dto.ErrorResponse(c, response.ErrNotFound("route"))
	}
}
