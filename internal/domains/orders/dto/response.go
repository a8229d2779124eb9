package dto

import (
	"time"

	"github.com/savioruz/kopi/internal/domains/orders/repository"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/helper"
)

type ReconcileAction string

const (
	// ActionUpdated means the payment status moved to the target state.
	ActionUpdated ReconcileAction = "updated"
	// ActionDuplicate means the order was already in the target state; only metadata was refreshed.
	ActionDuplicate ReconcileAction = "duplicate"
	// ActionIgnored means the transition is not allowed from the current state.
	ActionIgnored ReconcileAction = "ignored"
	// ActionSkipped means the order is a demo order and is never reconciled.
	ActionSkipped ReconcileAction = "skipped"
	// ActionNone means the outcome is not terminal.
	ActionNone ReconcileAction = "none"
)

type ReconcileResult struct {
	OrderID string          `json:"order_id"`
	Outcome string          `json:"outcome"`
	Action  ReconcileAction `json:"action"`
	Status  string          `json:"status,omitempty"`
}

type OrderPaymentResponse struct {
	OrderID            string            `json:"order_id"`
	Amount             string            `json:"amount"`
	Currency           string            `json:"currency"`
	PaymentStatus      string            `json:"payment_status"`
	PaymentInitiatedAt string            `json:"payment_initiated_at,omitempty"`
	UpdatedAt          string            `json:"updated_at"`
	Meta               map[string]string `json:"meta"`
}

func (o OrderPaymentResponse) FromModel(order repository.Order, meta []repository.ListOrderMetaRow) OrderPaymentResponse {
	res := OrderPaymentResponse{
		OrderID:       order.ID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		PaymentStatus: order.PaymentStatus,
		Meta:          make(map[string]string, len(meta)),
	}

	if order.PaymentInitiatedAt.Valid {
		res.PaymentInitiatedAt = helper.FormatDateInAppTimezone(order.PaymentInitiatedAt.Time, constant.FullDateFormat)
	}

	if order.UpdatedAt.Valid {
		res.UpdatedAt = helper.FormatDateInAppTimezone(order.UpdatedAt.Time, constant.FullDateFormat)
	}

	for _, m := range meta {
		res.Meta[m.MetaKey] = m.MetaValue
	}

	return res
}

// StaleOrder is an order awaiting a gateway result: pending, or failed and initiated again.
type StaleOrder struct {
	OrderID     string
	Amount      string
	Currency    string
	Status      string
	InitiatedAt time.Time
}
