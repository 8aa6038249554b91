// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs API requests with method, path, status and duration.
// Static asset requests are skipped; the calendar UI fetches them on every
// page load and they would drown the log.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if strings.HasPrefix(c.Path(), "/static/") {
			return err
		}

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		fields := []any{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		if err != nil {
			fields = append(fields, "error", err.Error())
		}
		log.Infow("http", fields...)
		return err
	}
}
