package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/internal/domains/orders/dto"
	"github.com/savioruz/kopi/internal/domains/orders/mock"
	"github.com/savioruz/kopi/pkg/failure"
	log "github.com/savioruz/kopi/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockOrderService(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	app := fiber.New()
	New(mockService, mockLogger, validator.New()).RegisterRoutes(app.Group("/v1"))

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().GetPayment(gomock.Any(), "1001").Return(dto.OrderPaymentResponse{
			OrderID:       "1001",
			PaymentStatus: "processing",
			Meta:          map[string]string{"_fiuu_transaction_id": "T1"},
		}, nil)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/v1/orders/1001/payment", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `"payment_status":"processing"`)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().GetPayment(gomock.Any(), "404").Return(dto.OrderPaymentResponse{}, failure.NotFound("order 404 not found"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/v1/orders/404/payment", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/v1/orders/"+strings.Repeat("9", 65)+"/payment", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
