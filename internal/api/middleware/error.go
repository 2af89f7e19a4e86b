package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"stock-price-predictor/internal/api/constant"
	"stock-price-predictor/internal/api/dto"
)

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		ctxErr := c.Request.Context().Err()
		if ctxErr != nil {
			// Check if the context error is specifically a deadline exceeded.
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				// Timeout may already have answered.
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.ErrorRes{
						Error: "request timed out",
					})
				}
				return
			}
		}

		// Check if there is no error
		if len(c.Errors) == 0 {
			return
		}

		// There is error; what error is it?
		err := c.Errors[0]

		// - Presence validation from request binding; the first failing
		// field is reported, in declaration order.
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			if len(ve) == 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorRes{
					Error: constant.ErrMalformedBody.Error(),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorRes{
				Error: constant.MissingKeyPrefix + ve[0].Field(),
			})
			return
		}

		// - Custom error from `constant` repo
		var ce constant.CustomError
		if errors.As(err, &ce) {
			c.AbortWithStatusJSON(ce.StatusCode, dto.ErrorRes{
				Error: ce.Error(),
			})
			return
		}

		// - Unknown error, likely internal server error
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorRes{
			Error: err.Error(),
		})
	}
}
