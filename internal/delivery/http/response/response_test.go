package response

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	app := fiber.New()
	app.Get("/json", func(c *fiber.Ctx) error {
		return WithJSON(c, fiber.StatusOK, map[string]string{"status": "processing"})
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return WithError(c, failure.NotFound("order 1001 not found"))
	})
	app.Get("/text", func(c *fiber.Ctx) error {
		return WithText(c, fiber.StatusBadRequest, "INVALID_SIGNATURE")
	})
	app.Get("/redirect", func(c *fiber.Ctx) error {
		return WithRedirect(c, "https://shop.example.com/payment/success?order=1001")
	})

	tests := []struct {
		name   string
		path   string
		code   int
		body   string
		header string
	}{
		{"json", "/json", fiber.StatusOK, `{"data":{"status":"processing"}}`, fiber.MIMEApplicationJSONCharsetUTF8},
		{"error", "/error", fiber.StatusNotFound, `{"error":"order 1001 not found"}`, fiber.MIMEApplicationJSONCharsetUTF8},
		{"text", "/text", fiber.StatusBadRequest, "INVALID_SIGNATURE", fiber.MIMETextPlainCharsetUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil))
			require.NoError(t, err)

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, tt.body, string(body))
			assert.Equal(t, tt.header, resp.Header.Get(fiber.HeaderContentType))
		})
	}

	t.Run("redirect", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/redirect", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "https://shop.example.com/payment/success?order=1001", resp.Header.Get(fiber.HeaderLocation))
	})
}
