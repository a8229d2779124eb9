package fiuu

import (
	"net/url"
	"strings"

	"github.com/savioruz/kopi/pkg/failure"
)

type PaymentRequest struct {
	OrderID     string `validate:"required,max=64"`
	Amount      string `validate:"required,numeric"`
	Currency    string `validate:"omitempty,alpha,max=3"`
	BillName    string
	BillEmail   string `validate:"omitempty,email"`
	BillMobile  string
	BillDesc    string
	ReturnURL   string `validate:"required,url"`
	NotifyURL   string `validate:"omitempty,url"`
	CallbackURL string `validate:"required,url"`
}

type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaymentForm is the hosted payment page request. URL is the complete GET redirect target;
// Action and Fields carry the same request for an auto-submitted POST form.
type PaymentForm struct {
	Action string      `json:"action"`
	URL    string      `json:"url"`
	Fields []FormField `json:"fields"`
}

func (f PaymentForm) Values() url.Values {
	v := make(url.Values, len(f.Fields))
	for _, field := range f.Fields {
		v.Set(field.Name, field.Value)
	}

	return v
}

// Get returns the value of the named field and whether it is present at all.
func (f PaymentForm) Get(name string) (string, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}

	return "", false
}

// Build signs req and lays it out in the order the hosted page expects. Empty billing fields
// are sent as empty strings: the endpoint rejects requests with missing keys.
func (g *Gateway) Build(req PaymentRequest) (PaymentForm, error) {
	if err := g.Validate(); err != nil {
		return PaymentForm{}, failure.InternalError(err)
	}

	if err := validate.Struct(req); err != nil {
		return PaymentForm{}, failure.BadRequestFromString("invalid payment request: " + err.Error())
	}

	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}

	fields := []FormField{
		{Name: "amount", Value: req.Amount},
		{Name: "orderid", Value: req.OrderID},
		{Name: "bill_name", Value: req.BillName},
		{Name: "bill_email", Value: req.BillEmail},
		{Name: "bill_mobile", Value: req.BillMobile},
		{Name: "bill_desc", Value: req.BillDesc},
		{Name: "currency", Value: req.Currency},
		{Name: "returnurl", Value: req.ReturnURL},
		{Name: "callbackurl", Value: req.CallbackURL},
		{Name: "vcode", Value: g.VCode(req)},
	}

	if req.NotifyURL != "" {
		fields = append(fields, FormField{Name: "notifyurl", Value: req.NotifyURL})
	}

	action := g.Host() + "/RMS/pay/" + url.PathEscape(g.merchantID) + "/" + g.channel

	var query strings.Builder
	for i, field := range fields {
		if i > 0 {
			query.WriteByte('&')
		}

		query.WriteString(field.Name)
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(field.Value))
	}

	return PaymentForm{
		Action: action,
		URL:    action + "?" + query.String(),
		Fields: fields,
	}, nil
}
