package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/domains/payments/dto"
	"github.com/savioruz/kopi/internal/domains/payments/mock"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/savioruz/kopi/pkg/fiuu"
	log "github.com/savioruz/kopi/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminToken = "s3cret-admin"

func newApp(t *testing.T) (*fiber.App, *mock.MockPaymentService) {
	ctrl := gomock.NewController(t)

	mockService := mock.NewMockPaymentService(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{Admin: config.Admin{Token: adminToken}}

	app := fiber.New()
	New(mockService, mockLogger, validator.New(validator.WithRequiredStructEnabled()), cfg).RegisterRoutes(app.Group("/v1"))

	return app, mockService
}

func scenarioAForm() url.Values {
	return url.Values{
		"tranID":   {"T1"},
		"orderid":  {"1001"},
		"status":   {"00"},
		"domain":   {"kopi_Dev"},
		"amount":   {"10.00"},
		"currency": {"MYR"},
		"paydate":  {"20240101120000"},
		"appcode":  {"A1"},
		"skey":     {"b648218a5102e96ee980dd82b05735ea"},
	}
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return req
}

func body(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	resp, err := app.Test(req)
	require.NoError(t, err)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(b)
}

func TestHandler_Notify(t *testing.T) {
	t.Run("OK on accepted delivery", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().
			HandleCallback(gomock.Any(), "notify", gomock.Any()).
			DoAndReturn(func(_ any, _ string, cb fiuu.Callback) (dto.CallbackResult, error) {
				assert.Equal(t, "T1", cb.TranID)
				assert.Equal(t, "10.00", cb.Amount)
				assert.Equal(t, "b648218a5102e96ee980dd82b05735ea", cb.Skey)

				return dto.CallbackResult{SignatureValid: true, Result: dto.ResultOK}, nil
			})

		code, got := body(t, app, postForm("/v1/payments/notify", scenarioAForm()))

		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "OK", got)
	})

	t.Run("OK even when reconcile failed", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().HandleCallback(gomock.Any(), "notify", gomock.Any()).Return(dto.CallbackResult{
			SignatureValid: true,
			Result:         dto.ResultReconcileError,
			ReconcileErr:   errors.New("db down"),
		}, nil)

		code, got := body(t, app, postForm("/v1/payments/notify", scenarioAForm()))

		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "OK", got)
	})

	t.Run("INVALID_SIGNATURE", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().HandleCallback(gomock.Any(), "notify", gomock.Any()).Return(dto.CallbackResult{Result: dto.ResultInvalidSignature}, nil)

		code, got := body(t, app, postForm("/v1/payments/notify", scenarioAForm()))

		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "INVALID_SIGNATURE", got)
	})

	for _, tc := range []struct{ orderID, status string }{
		{"1001", "zz"},
		{"1001", "5"},
		{"DEMO-1", "zz"},
	} {
		t.Run("OK on signed unknown status "+tc.orderID+"/"+tc.status, func(t *testing.T) {
			app, svc := newApp(t)

			form := scenarioAForm()
			form.Set("orderid", tc.orderID)
			form.Set("status", tc.status)

			cb, err := fiuu.ParseCallback(form)
			require.NoError(t, err)
			form.Set("skey", fiuu.Skey(cb, "kopi_Dev", "s3cr3t"))

			svc.EXPECT().
				HandleCallback(gomock.Any(), "notify", gomock.Any()).
				DoAndReturn(func(_ any, _ string, got fiuu.Callback) (dto.CallbackResult, error) {
					assert.Equal(t, tc.status, got.Status)
					assert.Equal(t, fiuu.OutcomePending, got.Outcome())

					return dto.CallbackResult{
						OrderID:        got.OrderID,
						Outcome:        fiuu.OutcomePending,
						SignatureValid: true,
						Result:         dto.ResultOK,
					}, nil
				})

			code, got := body(t, app, postForm("/v1/payments/notify", form))

			assert.Equal(t, fiber.StatusOK, code)
			assert.Equal(t, "OK", got)
		})
	}

	t.Run("INVALID_PAYLOAD", func(t *testing.T) {
		app, _ := newApp(t)

		form := scenarioAForm()
		form.Del("tranID")

		code, got := body(t, app, postForm("/v1/payments/notify", form))

		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "INVALID_PAYLOAD", got)
	})

	t.Run("500 on missing credentials", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().HandleCallback(gomock.Any(), "notify", gomock.Any()).Return(dto.CallbackResult{}, failure.InternalError(fiuu.ErrMissingCredentials))

		code, _ := body(t, app, postForm("/v1/payments/notify", scenarioAForm()))

		assert.Equal(t, fiber.StatusInternalServerError, code)
	})

	t.Run("readiness", func(t *testing.T) {
		app, _ := newApp(t)

		code, got := body(t, app, httptest.NewRequest(fiber.MethodGet, "/v1/payments/notify", nil))

		assert.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, got, `"status":"ready"`)
	})
}

func TestHandler_Callback(t *testing.T) {
	app, svc := newApp(t)

	svc.EXPECT().HandleCallback(gomock.Any(), "callback", gomock.Any()).Return(dto.CallbackResult{Demo: true, Result: dto.ResultDemo}, nil)

	code, got := body(t, app, postForm("/v1/payments/callback", scenarioAForm()))

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "OK", got)
}

func TestHandler_Return(t *testing.T) {
	const success = "https://shop.example.com/payment/success?order=1001&txn=T1"

	t.Run("GET reads the query", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().
			HandleReturn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, values url.Values) string {
				assert.Equal(t, "1001", values.Get("orderid"))

				return success
			})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/v1/payments/return?"+scenarioAForm().Encode(), nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, success, resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("POST reads the form", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().
			HandleReturn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, values url.Values) string {
				assert.Equal(t, "T1", values.Get("tranID"))

				return success
			})

		resp, err := app.Test(postForm("/v1/payments/return", scenarioAForm()))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	})
}

func TestHandler_Initiate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().
			Initiate(gomock.Any(), dto.InitiatePaymentRequest{OrderID: "1001", Amount: "10.00"}).
			Return(dto.InitiatePaymentResponse{OrderID: "1001", PaymentURL: "https://pay.fiuu.com/RMS/pay/kopi_Dev/indexAN.php?amount=10.00"}, nil)

		req := httptest.NewRequest(fiber.MethodPost, "/v1/payments/initiate", strings.NewReader(`{"order_id":"1001","amount":"10.00"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		code, got := body(t, app, req)

		assert.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, got, `"payment_url"`)
	})

	t.Run("success: numeric amount", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().
			Initiate(gomock.Any(), dto.InitiatePaymentRequest{OrderID: "1001", Amount: "10.5"}).
			Return(dto.InitiatePaymentResponse{OrderID: "1001", Amount: "10.5"}, nil)

		req := httptest.NewRequest(fiber.MethodPost, "/v1/payments/initiate", strings.NewReader(`{"order_id":"1001","amount":10.5}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		code, got := body(t, app, req)

		assert.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, got, `"amount":"10.5"`)
	})

	t.Run("validation error", func(t *testing.T) {
		app, _ := newApp(t)

		req := httptest.NewRequest(fiber.MethodPost, "/v1/payments/initiate", strings.NewReader(`{"order_id":"1001","amount":"ten"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		code, _ := body(t, app, req)

		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestHandler_Config(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().PublicConfig().Return(dto.PublicConfigResponse{MerchantID: "kopi_Dev"}, nil)

		code, got := body(t, app, httptest.NewRequest(fiber.MethodGet, "/v1/payments/config", nil))

		assert.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, got, `"merchant_id":"kopi_Dev"`)
		assert.NotContains(t, got, "key")
	})

	t.Run("not configured", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().PublicConfig().Return(dto.PublicConfigResponse{}, failure.InternalError(fiuu.ErrMissingCredentials))

		code, got := body(t, app, httptest.NewRequest(fiber.MethodGet, "/v1/payments/config", nil))

		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.Contains(t, got, "failed to get payment configuration")
	})
}

func TestHandler_Admin(t *testing.T) {
	t.Run("requery requires the admin token", func(t *testing.T) {
		app, _ := newApp(t)

		code, _ := body(t, app, httptest.NewRequest(fiber.MethodGet, "/v1/payments/1001/requery", nil))

		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("requery", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().Requery(gomock.Any(), "1001").Return(dto.RequeryResponse{OrderID: "1001", Status: "00"}, nil)

		req := httptest.NewRequest(fiber.MethodGet, "/v1/payments/1001/requery", nil)
		req.Header.Set("X-Admin-Token", adminToken)

		code, got := body(t, app, req)

		assert.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, got, `"status":"00"`)
	})

	t.Run("refund", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().Refund(gomock.Any(), "1001", dto.RefundRequest{Amount: "10.00"}).Return(dto.RefundResponse{OrderID: "1001", Amount: "10.00"}, nil)

		req := httptest.NewRequest(fiber.MethodPost, "/v1/payments/1001/refund", strings.NewReader(`{"amount":"10.00"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set("X-Admin-Token", adminToken)

		code, _ := body(t, app, req)

		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("callbacks", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().History(gomock.Any(), "1001", 5).Return([]dto.CallbackHistoryResponse{{Source: "notify"}}, nil)

		req := httptest.NewRequest(fiber.MethodGet, "/v1/payments/1001/callbacks?limit=5", nil)
		req.Header.Set("X-Admin-Token", adminToken)

		code, got := body(t, app, req)

		assert.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, got, `"source":"notify"`)
	})
}
