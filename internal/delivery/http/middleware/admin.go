package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/delivery/http/response"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/failure"
)

// AdminOnly guards operator routes with a shared token. With no token configured the routes
// are closed.
func AdminOnly(cfg *config.Config) fiber.Handler {
	expected := []byte(cfg.Admin.Token)

	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return response.WithError(c, failure.Forbidden("admin api is disabled"))
		}

		token := c.Get(constant.RequestHeaderAdminToken)
		if token == "" {
			return response.WithError(c, failure.Unauthorized("missing admin token"))
		}

		if subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
			return response.WithError(c, failure.Forbidden("invalid admin token"))
		}

		return c.Next()
	}
}
