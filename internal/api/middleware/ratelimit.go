package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bibliotech/catalog-api/internal/api/metrics"
)

// Counter is the external request counter the rate limiter relies on.
type Counter interface {
	Incr(ctx context.Context, clientID string, window time.Duration) (int64, error)
}

// RateLimit rejects clients that exceed max requests per fixed window,
// keyed by client IP. Counter failures fail open: availability of the API
// is preferred over enforcement when Redis is down.
func RateLimit(counter Counter, max int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := counter.Incr(c.Request().Context(), c.RealIP(), window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limit counter unavailable")
				return next(c)
			}

			if count > max {
				metrics.RequestsThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}

			return next(c)
		}
	}
}
