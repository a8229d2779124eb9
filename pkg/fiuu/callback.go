package fiuu

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/kopi/pkg/failure"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Callback is the payment result the gateway posts to notify, callback and return. It is
// untrusted until Gateway.Verify accepts its Skey.
type Callback struct {
	TranID    string `json:"tranID" validate:"required,max=64"`
	OrderID   string `json:"orderid" validate:"required,max=64"`
	Status    string `json:"status" validate:"required,max=8"`
	Domain    string `json:"domain"`
	Amount    string `json:"amount" validate:"required,numeric"`
	Currency  string `json:"currency" validate:"required,alpha,max=3"`
	PayDate   string `json:"paydate"`
	AppCode   string `json:"appcode"`
	Channel   string `json:"channel"`
	ErrorDesc string `json:"error_desc"`
	Skey      string `json:"skey"`
}

// wire names, in the order the gateway documents them
const (
	fieldTranID    = "tranID"
	fieldOrderID   = "orderid"
	fieldStatus    = "status"
	fieldDomain    = "domain"
	fieldAmount    = "amount"
	fieldCurrency  = "currency"
	fieldPayDate   = "paydate"
	fieldSkey      = "skey"
	fieldChannel   = "channel"
	fieldAppCode   = "appcode"
	fieldErrorDesc = "error_desc"
)

// ParseCallback turns a form or query payload into a typed Callback, rejecting payloads that
// lack the fields the signature is computed over. Values are kept verbatim apart from
// surrounding whitespace on identifiers; amount and paydate are never reformatted.
func ParseCallback(values url.Values) (Callback, error) {
	cb := Callback{
		TranID:    strings.TrimSpace(values.Get(fieldTranID)),
		OrderID:   strings.TrimSpace(values.Get(fieldOrderID)),
		Status:    strings.TrimSpace(values.Get(fieldStatus)),
		Domain:    values.Get(fieldDomain),
		Amount:    values.Get(fieldAmount),
		Currency:  values.Get(fieldCurrency),
		PayDate:   values.Get(fieldPayDate),
		AppCode:   values.Get(fieldAppCode),
		Channel:   values.Get(fieldChannel),
		ErrorDesc: values.Get(fieldErrorDesc),
		Skey:      strings.TrimSpace(values.Get(fieldSkey)),
	}

	if err := validate.Struct(cb); err != nil {
		return cb, failure.BadRequestFromString("invalid callback payload: " + err.Error())
	}

	return cb, nil
}

func (c Callback) Outcome() Outcome {
	return Classify(c.Status)
}

// Fields returns the payload under its wire names, for journaling and forensic logs.
func (c Callback) Fields() map[string]string {
	return map[string]string{
		fieldTranID:    c.TranID,
		fieldOrderID:   c.OrderID,
		fieldStatus:    c.Status,
		fieldDomain:    c.Domain,
		fieldAmount:    c.Amount,
		fieldCurrency:  c.Currency,
		fieldPayDate:   c.PayDate,
		fieldSkey:      c.Skey,
		fieldChannel:   c.Channel,
		fieldAppCode:   c.AppCode,
		fieldErrorDesc: c.ErrorDesc,
	}
}
