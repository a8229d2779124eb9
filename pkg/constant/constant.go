package constant

import "time"

const (
	CacheParentKey = "kopi"
)

const (
	RequestParamOrderID = "orderId"

	RequestHeaderAdminToken = "X-Admin-Token"
	RequestHeaderRequestID  = "X-Request-ID"
)

// Order payment states as stored by the order store.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusFailed     = "failed"
)

// Callback sources, also used as journal and metric labels.
const (
	CallbackSourceNotify   = "notify"
	CallbackSourceCallback = "callback"
	CallbackSourceReturn   = "return"
	CallbackSourceRequery  = "requery"
)

// Literal bodies the gateway expects back from notify/callback.
const (
	GatewayAckOK            = "OK"
	GatewayInvalidSignature = "INVALID_SIGNATURE"
	GatewayInvalidPayload   = "INVALID_PAYLOAD"
)

// Order meta keys written on reconciliation.
const (
	MetaTransactionID  = "_fiuu_transaction_id"
	MetaPaymentStatus  = "_fiuu_payment_status"
	MetaPaymentDate    = "_fiuu_payment_date"
	MetaPaymentChannel = "_fiuu_payment_channel"
	MetaPaymentAmount  = "_fiuu_payment_amount"
	MetaAppCode        = "_fiuu_app_code"
	MetaErrorDesc      = "_fiuu_error_desc"
)

const (
	PaymentPathReturn   = "/v1/payments/return"
	PaymentPathNotify   = "/v1/payments/notify"
	PaymentPathCallback = "/v1/payments/callback"

	PagePaymentSuccess = "/payment/success"
	PagePaymentFailed  = "/payment/failed"
	PagePaymentError   = "/payment/error"
)

const (
	DefaultBillName  = "Coffee Oasis Customer"
	DefaultBillEmail = "customer@coffee-oasis.com.my"
)

const (
	FullDateFormat = time.RFC3339
)
