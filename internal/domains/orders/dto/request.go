package dto

import (
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/fiuu"
)

type RegisterOrderParams struct {
	OrderID  string `json:"order_id" validate:"required,max=64"`
	Amount   string `json:"amount" validate:"required,numeric"`
	Currency string `json:"currency" validate:"required,alpha,len=3"`
}

// PaymentMeta is what a verified gateway result leaves on the order.
type PaymentMeta struct {
	TransactionID string
	PaymentStatus string
	PaymentDate   string
	Channel       string
	Amount        string
	AppCode       string
	ErrorDesc     string
}

func PaymentMetaFromCallback(cb fiuu.Callback) PaymentMeta {
	return PaymentMeta{
		TransactionID: cb.TranID,
		PaymentStatus: cb.Status,
		PaymentDate:   cb.PayDate,
		Channel:       cb.Channel,
		Amount:        cb.Amount,
		AppCode:       cb.AppCode,
		ErrorDesc:     cb.ErrorDesc,
	}
}

// Pairs returns the meta keys and values recorded for the given outcome, in matching order.
// Pending results record nothing.
func (m PaymentMeta) Pairs(outcome fiuu.Outcome) (keys, values []string) {
	switch outcome {
	case fiuu.OutcomeSuccess:
		keys = []string{
			constant.MetaTransactionID,
			constant.MetaPaymentStatus,
			constant.MetaPaymentDate,
			constant.MetaPaymentChannel,
			constant.MetaPaymentAmount,
			constant.MetaAppCode,
		}
		values = []string{m.TransactionID, m.PaymentStatus, m.PaymentDate, m.Channel, m.Amount, m.AppCode}
	case fiuu.OutcomeFailed:
		keys = []string{
			constant.MetaTransactionID,
			constant.MetaPaymentStatus,
			constant.MetaErrorDesc,
		}
		values = []string{m.TransactionID, m.PaymentStatus, m.ErrorDesc}
	}

	return keys, values
}
