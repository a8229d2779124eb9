package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/internal/delivery/http/response"
	"github.com/savioruz/kopi/internal/domains/orders/service"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/savioruz/kopi/pkg/logger"
)

type Handler struct {
	service   service.OrderService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.OrderService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - orders - %s"

	routePath = "/orders"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	orders := r.Group(routePath)

	orders.Get("/:orderId/payment", h.GetPayment)
}

// GetPayment godoc
// @Summary Get order payment status
// @Description Payment status and gateway metadata recorded on the order
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} response.Data[dto.OrderPaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /orders/{orderId}/payment [get]
func (h *Handler) GetPayment(ctx *fiber.Ctx) error {
	orderID := ctx.Params(constant.RequestParamOrderID)

	if err := h.validator.Var(orderID, "required,max=64"); err != nil {
		err = failure.BadRequestFromString("invalid order id")

		h.logger.Error(identifier, " - get payment - %v", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetPayment(ctx.UserContext(), orderID)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
