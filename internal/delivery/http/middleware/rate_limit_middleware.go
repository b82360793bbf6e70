package middleware

import (
	"log/slog"
	"sync"
	"time"

	"indieneer/config"
	deliverycontext "indieneer/internal/delivery/context"
	domainerrors "indieneer/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

const (
	defaultRateLimitRequests = 100
	defaultRateLimitWindow   = time.Minute
)

// RateLimitMiddleware caps requests per (client IP, route) over a sliding window.
// Counters live in process memory, so every instance enforces its own limit.
type RateLimitMiddleware struct {
	enabled bool
	limit   int
	window  time.Duration
	hits    *cache.Cache
	mu      sync.Mutex
	now     func() time.Time
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	rl := cfg.HTTP.RateLimit

	return newRateLimitMiddleware(rl.Enabled, rl.Requests, rl.Window, logger)
}

func newRateLimitMiddleware(enabled bool, limit int, window time.Duration, logger *slog.Logger) *RateLimitMiddleware {
	if limit <= 0 {
		limit = defaultRateLimitRequests
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}

	return &RateLimitMiddleware{
		enabled: enabled,
		limit:   limit,
		window:  window,
		hits:    cache.New(window, 2*window),
		now:     time.Now,
		logger:  logger,
	}
}

// Handle rejects the request with 429 once the window already holds limit requests.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		key := c.RealIP() + " " + c.Request().Method + " " + c.Path()
		if !m.allow(key) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limit exceeded", slog.String("key", key))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

// allow records a hit for key and reports whether it fits in the window.
func (m *RateLimitMiddleware) allow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cutoff := now.Add(-m.window)

	var recent []time.Time
	if v, ok := m.hits.Get(key); ok {
		for _, t := range v.([]time.Time) {
			if t.After(cutoff) {
				recent = append(recent, t)
			}
		}
	}

	if len(recent) >= m.limit {
		m.hits.Set(key, recent, m.window)

		return false
	}

	m.hits.Set(key, append(recent, now), m.window)

	return true
}
