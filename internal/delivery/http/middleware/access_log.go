package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware tags each request with an X-Request-ID, reusing the caller's
// value when present, and logs one line after the handler returns.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		m.logger.Printf(
			"http_access rid=%s ip=%s method=%s path=%s status=%d latency=%s req_bytes=%d resp_bytes=%d ua=%q",
			rid, c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start),
			c.Request().Header.ContentLength(), len(c.Response().Body()), c.Get("User-Agent"),
		)
		return err
	}
}
