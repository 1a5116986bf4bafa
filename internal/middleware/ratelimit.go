package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/ratelimit"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

// RateLimit rejects callers over the limiter's budget, keyed by scope and client IP
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(scope + ":" + c.ClientIP()) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.TooManyRequests),
				response.WithErrorMessage("too many requests, please try again later"),
			))
			return
		}
		c.Next()
	}
}
