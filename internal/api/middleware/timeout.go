package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock-price-predictor/internal/api/dto"
)

// Timeout bounds the request context. The chain runs on the serving
// goroutine, so handlers must honour ctx and return once it is done; a
// response that was not written before the deadline becomes a 504.
func Timeout(duration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), duration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.ErrorRes{
				Error: "request timed out",
			})
		}
	}
}
