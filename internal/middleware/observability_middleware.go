package middleware

import (
	"strconv"
	"time"

	"github.com/fadilmartias/cv-feedback/internal/observability"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Observability records request metrics and logs every request under /api.
func Observability(logger zerolog.Logger) fiber.Handler {
	observability.RegisterMetrics()
	logger = logger.With().Str("component", "http").Logger()

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		route := routeTemplate(c)
		method := c.Method()
		status := c.Response().StatusCode()

		observability.HTTPRequests().WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		observability.HTTPDuration().WithLabelValues(method, route).Observe(duration.Seconds())

		level := zerolog.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= fiber.StatusBadRequest:
			level = zerolog.WarnLevel
		}
		logger.WithLevel(level).
			Str("route", route).
			Str("method", method).
			Int("status", status).
			Float64("latency_ms", float64(duration)/float64(time.Millisecond)).
			Msg("request completed")

		return err
	}
}

func routeTemplate(c *fiber.Ctx) string {
	if c.Route() != nil && c.Route().Path != "" {
		return c.Route().Path
	}
	return c.Path()
}
