package dto

import "encoding/json"

// InitiatePaymentRequest accepts the amount as a JSON number or a numeric string.
type InitiatePaymentRequest struct {
	OrderID       string      `json:"order_id" validate:"required,max=64"`
	Amount        json.Number `json:"amount" validate:"required,numeric"`
	Currency      string      `json:"currency" validate:"omitempty,alpha,len=3"`
	CustomerName  string      `json:"customer_name" validate:"max=128"`
	CustomerEmail string      `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string      `json:"customer_phone" validate:"max=32"`
	Description   string      `json:"description" validate:"max=255"`
}

type RefundRequest struct {
	Amount json.Number `json:"amount" validate:"required,numeric"`
}

type HistoryRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
