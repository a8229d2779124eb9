package httpserver

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Options(t *testing.T) {
	s := New(
		Port("8080"),
		ReadTimeout(time.Second),
		WriteTimeout(2*time.Second),
		ShutdownTimeout(3*time.Second),
		ProxyHeader(fiber.HeaderXForwardedFor),
	)

	assert.Equal(t, ":8080", s.address)
	assert.Equal(t, time.Second, s.readTimeout)
	assert.Equal(t, 2*time.Second, s.writeTimeout)
	assert.Equal(t, 3*time.Second, s.shutdownTimeout)
	assert.NotNil(t, s.App)
	assert.Equal(t, fiber.HeaderXForwardedFor, s.FiberConfig().ProxyHeader)
}

func TestNew_KeepsProvidedApp(t *testing.T) {
	app := fiber.New()
	s := New(App(app))

	assert.Same(t, app, s.App)
}

func TestErrorHandler(t *testing.T) {
	s := New()
	s.App.Get("/missing", func(c *fiber.Ctx) error {
		return failure.NotFound("order")
	})
	s.App.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusMethodNotAllowed, "nope")
	})
	s.App.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	tests := []struct {
		path string
		code int
	}{
		{"/missing", fiber.StatusNotFound},
		{"/fiber", fiber.StatusMethodNotAllowed},
		{"/plain", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := s.App.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), `"error"`)
		})
	}
}
