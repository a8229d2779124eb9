package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	orderDto "github.com/savioruz/kopi/internal/domains/orders/dto"
	"github.com/savioruz/kopi/internal/domains/payments/repository"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/fiuu"
	"github.com/savioruz/kopi/pkg/helper"
)

type InitiatePaymentResponse struct {
	OrderID    string           `json:"order_id"`
	Amount     string           `json:"amount"`
	Currency   string           `json:"currency"`
	PaymentURL string           `json:"payment_url"`
	Action     string           `json:"action"`
	Fields     []fiuu.FormField `json:"fields"`
}

type PublicConfigResponse struct {
	MerchantID  string `json:"merchant_id"`
	SandboxMode bool   `json:"sandbox_mode"`
	ScriptURL   string `json:"script_url"`
	VerifyURL   string `json:"verify_url"`
}

type NotifyReadinessResponse struct {
	Endpoint string   `json:"endpoint"`
	Status   string   `json:"status"`
	Methods  []string `json:"methods"`
}

// Callback results, also used as metric labels.
const (
	ResultOK               = "ok"
	ResultInvalidSignature = "invalid_signature"
	ResultDemo             = "demo"
	ResultDuplicate        = "duplicate"
	ResultReconcileError   = "reconcile_error"
)

// CallbackResult describes how a notify/callback delivery was handled. Everything except an
// invalid signature is acknowledged to the gateway.
type CallbackResult struct {
	Source         string
	OrderID        string
	Outcome        fiuu.Outcome
	SignatureValid bool
	Demo           bool
	Result         string
	Action         orderDto.ReconcileAction
	ReconcileErr   error
}

func (r CallbackResult) Acknowledged() bool {
	return r.SignatureValid || r.Demo
}

type RequeryResponse struct {
	OrderID           string `json:"order_id"`
	TranID            string `json:"tran_id"`
	Status            string `json:"status"`
	StatusDescription string `json:"status_description"`
	Outcome           string `json:"outcome"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	PayDate           string `json:"paydate"`
	Channel           string `json:"channel"`
}

func (r RequeryResponse) FromResult(res fiuu.RequeryResult) RequeryResponse {
	return RequeryResponse{
		OrderID:           res.OrderID,
		TranID:            res.TranID,
		Status:            res.Status,
		StatusDescription: fiuu.Describe(res.Status),
		Outcome:           fiuu.Classify(res.Status).String(),
		Amount:            res.Amount,
		Currency:          res.Currency,
		PayDate:           res.PayDate,
		Channel:           res.Channel,
	}
}

type RefundResponse struct {
	OrderID string         `json:"order_id"`
	Amount  string         `json:"amount"`
	Gateway map[string]any `json:"gateway"`
}

type CallbackHistoryResponse struct {
	ID             string            `json:"id"`
	Source         string            `json:"source"`
	TranID         string            `json:"tran_id"`
	Status         string            `json:"status"`
	SignatureValid bool              `json:"signature_valid"`
	Outcome        string            `json:"outcome"`
	Payload        map[string]string `json:"payload"`
	CreatedAt      string            `json:"created_at"`
}

// FromModel maps a journal row. A payload that does not decode leaves Payload nil and is
// reported through the returned error; the rest of the row is still filled in.
func (c CallbackHistoryResponse) FromModel(m repository.PaymentCallback) (CallbackHistoryResponse, error) {
	res := CallbackHistoryResponse{
		Source:         m.Source,
		TranID:         m.TranID,
		Status:         m.Status,
		SignatureValid: m.SignatureValid,
		Outcome:        m.Outcome,
	}

	if m.ID.Valid {
		res.ID = uuid.UUID(m.ID.Bytes).String()
	}

	if m.CreatedAt.Valid {
		res.CreatedAt = helper.FormatDateInAppTimezone(m.CreatedAt.Time, constant.FullDateFormat)
	}

	if len(m.Payload) == 0 {
		return res, nil
	}

	var payload map[string]string
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return res, fmt.Errorf("decode payload of callback %s: %w", res.ID, err)
	}

	res.Payload = payload

	return res, nil
}
