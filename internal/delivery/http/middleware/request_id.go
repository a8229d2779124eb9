package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/kopi/pkg/constant"
)

type ctxKey string

const RequestIDKey ctxKey = "request_id"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constant.RequestHeaderRequestID, requestID)
		c.Locals(RequestIDKey, requestID)

		return c.Next()
	}
}
