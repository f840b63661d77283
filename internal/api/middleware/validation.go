package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/pkg/models"
	"empoweryouth-api/pkg/utils"
)

// RequestValidation middleware tags every request with an id and
// rejects oversized POST bodies before any handler work.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				contentLength := c.Request().ContentLength
				if contentLength > 1024*1024 { // 1MB limit
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error: "Request body too large",
					})
				}
			}

			return next(c)
		}
	}
}
