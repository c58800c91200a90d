package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per completed HTTP request.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)

			log.Printf("%s %s %d %dB %s",
				req.Method,
				req.RequestURI,
				res.Status,
				res.Size,
				time.Since(start),
			)

			return err
		}
	}
}
