package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/config"
	log "github.com/savioruz/kopi/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminOnly(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) }

	tests := []struct {
		name       string
		configured string
		sent       string
		code       int
	}{
		{"disabled when no token configured", "", "anything", fiber.StatusForbidden},
		{"missing header", "s3cret", "", fiber.StatusUnauthorized},
		{"wrong token", "s3cret", "s3cre7", fiber.StatusForbidden},
		{"valid token", "s3cret", "s3cret", fiber.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/admin", AdminOnly(&config.Config{Admin: config.Admin{Token: tt.configured}}), ok)

			req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
			if tt.sent != "" {
				req.Header.Set("X-Admin-Token", tt.sent)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(RequestIDKey).(string)

		return c.SendString(id)
	})

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-1")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "req-1", resp.Header.Get("X-Request-ID"))
	})
}

func TestLoggerAndRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	app := fiber.New()
	app.Use(Logger(mockLogger))
	app.Use(Recovery(mockLogger))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
