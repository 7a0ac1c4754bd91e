package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	ctxpkg "github.com/piresc/quickconnect/internal/pkg/context"
)

// RequestIDMiddleware keeps an incoming X-Request-ID or assigns a new one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
				c.Request().Header.Set(echo.HeaderXRequestID, requestID)
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)
			c.SetRequest(c.Request().WithContext(ctxpkg.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
