package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AccessLogMiddleware writes one line per request. The request id comes from
// X-Request-ID when the client sends one and is echoed back either way.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		rid := requestID(c)

		err := c.Next()

		m.logger.Printf("http rid=%s ip=%s method=%s path=%s status=%d latency=%s",
			rid, c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}

func requestID(c fiber.Ctx) string {
	if rid := c.Get("X-Request-ID"); rid != "" {
		return rid
	}
	rid := uuid.NewString()
	c.Set("X-Request-ID", rid)
	return rid
}
