package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/delivery/http/middleware"
	"github.com/savioruz/kopi/internal/delivery/http/response"
	"github.com/savioruz/kopi/internal/domains/payments/dto"
	"github.com/savioruz/kopi/internal/domains/payments/service"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/savioruz/kopi/pkg/fiuu"
	"github.com/savioruz/kopi/pkg/logger"
	"github.com/savioruz/kopi/pkg/metrics"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
	cfg       *config.Config
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
		cfg:       cfg,
	}
}

const (
	identifier = "http - payments - %s"

	routePath = "/payments"

	orderIDRule = "required,max=64"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	payments := r.Group(routePath)

	payments.Get("/notify", h.NotifyReadiness)
	payments.Post("/notify", h.Notify)
	payments.Post("/callback", h.Callback)
	payments.Get("/return", h.Return)
	payments.Post("/return", h.Return)
	payments.Post("/initiate", h.Initiate)
	payments.Get("/config", h.Config)

	payments.Get("/:orderId/requery", middleware.AdminOnly(h.cfg), h.Requery)
	payments.Post("/:orderId/refund", middleware.AdminOnly(h.cfg), h.Refund)
	payments.Get("/:orderId/callbacks", middleware.AdminOnly(h.cfg), h.Callbacks)
}

// NotifyReadiness godoc
// @Summary Notification URL check
// @Description Lets the gateway confirm the notification URL exists
// @Tags payments
// @Produce json
// @Success 200 {object} response.Data[dto.NotifyReadinessResponse]
// @Router /payments/notify [get]
func (h *Handler) NotifyReadiness(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, dto.NotifyReadinessResponse{
		Endpoint: "Fiuu payment notification webhook",
		Status:   "ready",
		Methods:  []string{fiber.MethodPost},
	})
}

// Notify godoc
// @Summary Payment notification
// @Description Server-to-server payment result. Answers the literal OK once the delivery is accepted.
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "INVALID_PAYLOAD or INVALID_SIGNATURE"
// @Failure 500 {object} response.Error
// @Router /payments/notify [post]
func (h *Handler) Notify(ctx *fiber.Ctx) error {
	return h.handleCallback(ctx, constant.CallbackSourceNotify)
}

// Callback godoc
// @Summary Delayed payment callback
// @Description Server-to-server result for payment methods that settle later
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "INVALID_PAYLOAD or INVALID_SIGNATURE"
// @Failure 500 {object} response.Error
// @Router /payments/callback [post]
func (h *Handler) Callback(ctx *fiber.Ctx) error {
	return h.handleCallback(ctx, constant.CallbackSourceCallback)
}

func (h *Handler) handleCallback(ctx *fiber.Ctx, source string) error {
	values, err := formValues(ctx)
	if err != nil {
		h.logger.Warn(identifier, " - %s - failed to read form: %v", source, err)
		metrics.IncCallback(source, "invalid_payload")

		return response.WithText(ctx, fiber.StatusBadRequest, constant.GatewayInvalidPayload)
	}

	cb, err := fiuu.ParseCallback(values)
	if err != nil {
		h.logger.Warn(identifier, " - %s - %v", source, err)
		metrics.IncCallback(source, "invalid_payload")

		return response.WithText(ctx, fiber.StatusBadRequest, constant.GatewayInvalidPayload)
	}

	res, err := h.service.HandleCallback(ctx.UserContext(), source, cb)
	if err != nil {
		return response.WithError(ctx, err)
	}

	if !res.Acknowledged() {
		return response.WithText(ctx, fiber.StatusBadRequest, constant.GatewayInvalidSignature)
	}

	return response.WithText(ctx, fiber.StatusOK, constant.GatewayAckOK)
}

// Return godoc
// @Summary Customer return
// @Description Browser return from the hosted payment page. Redirects to the storefront result page.
// @Tags payments
// @Accept x-www-form-urlencoded
// @Success 303
// @Router /payments/return [get]
// @Router /payments/return [post]
func (h *Handler) Return(ctx *fiber.Ctx) error {
	values := queryValues(ctx)

	if ctx.Method() == fiber.MethodPost {
		form, err := formValues(ctx)
		if err != nil {
			h.logger.Warn(identifier, " - return - failed to read form: %v", err)
		}

		for k, v := range form {
			values[k] = v
		}
	}

	return response.WithRedirect(ctx, h.service.HandleReturn(ctx.UserContext(), values))
}

// Initiate godoc
// @Summary Initiate payment
// @Description Registers the order and builds the signed hosted payment page request
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.InitiatePaymentRequest true "Payment request"
// @Success 200 {object} response.Data[dto.InitiatePaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/initiate [post]
func (h *Handler) Initiate(ctx *fiber.Ctx) error {
	var req dto.InitiatePaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, " - initiate - body parsing error: %v", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, " - initiate - validation error: %v", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Initiate(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Config godoc
// @Summary Public gateway configuration
// @Description Merchant id and widget URLs for client-side initialisation. No keys are exposed.
// @Tags payments
// @Produce json
// @Success 200 {object} response.Data[dto.PublicConfigResponse]
// @Failure 500 {object} response.Error
// @Router /payments/config [get]
func (h *Handler) Config(ctx *fiber.Ctx) error {
	res, err := h.service.PublicConfig()
	if err != nil {
		h.logger.Error(identifier, " - config - %v", err)

		return response.WithError(ctx, failure.InternalError(errPaymentConfig))
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Requery godoc
// @Summary Requery transaction
// @Description Asks the gateway for the current status of an order's payment
// @Tags payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} response.Data[dto.RequeryResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /payments/{orderId}/requery [get]
// @Security AdminToken
func (h *Handler) Requery(ctx *fiber.Ctx) error {
	orderID, err := h.orderID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	res, err := h.service.Requery(ctx.UserContext(), orderID)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Refund godoc
// @Summary Refund payment
// @Description Requests a refund for an order's payment
// @Tags payments
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param refund body dto.RefundRequest true "Refund request"
// @Success 200 {object} response.Data[dto.RefundResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /payments/{orderId}/refund [post]
// @Security AdminToken
func (h *Handler) Refund(ctx *fiber.Ctx) error {
	orderID, err := h.orderID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.RefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	res, err := h.service.Refund(ctx.UserContext(), orderID, req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Callbacks godoc
// @Summary Callback journal
// @Description Gateway deliveries recorded for an order, newest first
// @Tags payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Param request query dto.HistoryRequest false "History request"
// @Success 200 {object} response.Data[[]dto.CallbackHistoryResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /payments/{orderId}/callbacks [get]
// @Security AdminToken
func (h *Handler) Callbacks(ctx *fiber.Ctx) error {
	orderID, err := h.orderID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.HistoryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	res, err := h.service.History(ctx.UserContext(), orderID, req.Limit)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

func (h *Handler) orderID(ctx *fiber.Ctx) (string, error) {
	orderID := ctx.Params(constant.RequestParamOrderID)

	if err := h.validator.Var(orderID, orderIDRule); err != nil {
		return "", failure.BadRequestFromString("invalid order id")
	}

	return orderID, nil
}
