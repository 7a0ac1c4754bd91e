package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Rate      string   // limiter format, e.g. "30-M"
	SkipPaths []string // path prefixes that are never limited
	OnDeny    func(route string)
}

// RateLimiter limits requests per client IP and route
type RateLimiter struct {
	cfg     RateLimiterConfig
	limiter *limiter.Limiter
}

// NewRateLimiter builds an in-memory rate limiter
func NewRateLimiter(cfg RateLimiterConfig, store limiter.Store) (*RateLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = memory.NewStore()
	}
	return &RateLimiter{cfg: cfg, limiter: limiter.New(store, rate)}, nil
}

// Middleware returns the echo middleware
func (l *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range l.cfg.SkipPaths {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			route := c.Path()
			if route == "" {
				route = path
			}
			key := c.RealIP() + ":" + route

			lctx, err := l.limiter.Get(c.Request().Context(), key)
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request", logger.Err(err))
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				retryAfter := time.Until(time.Unix(lctx.Reset, 0))
				if retryAfter < 0 {
					retryAfter = 0
				}
				h.Set("Retry-After", strconv.FormatInt(int64(retryAfter.Seconds()), 10))
				if l.cfg.OnDeny != nil {
					l.cfg.OnDeny(route)
				}
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
