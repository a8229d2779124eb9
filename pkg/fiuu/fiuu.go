// Package fiuu implements the merchant side of the Fiuu (formerly MOLPay / Razer Merchant
// Services) hosted payment page protocol: outbound request signing (vcode), inbound callback
// verification (skey), status interpretation and the TxnQuery / Refund API client.
package fiuu

import (
	"errors"
	"strings"
)

const (
	productionHost = "https://pay.fiuu.com"
	sandboxHost    = "https://sandbox-payment.fiuu.com"

	// scripts for the seamless widget live on a different host than the hosted page
	productionWidgetHost = "https://payment.fiuu.com"

	DefaultChannel  = "indexAN.php"
	DefaultCurrency = "MYR"
)

var ErrMissingCredentials = errors.New("fiuu: missing merchant credentials (FIUU_MERCHANT_ID, FIUU_VERIFY_KEY, FIUU_SECRET_KEY)")

type Config struct {
	MerchantID  string
	VerifyKey   string
	SecretKey   string
	SandboxMode bool
	Channel     string
	DemoPrefix  string
}

// Gateway holds merchant credentials. It is built once per process and shared by handlers;
// every method is safe for concurrent use.
type Gateway struct {
	merchantID string
	verifyKey  string
	secretKey  string
	sandbox    bool
	channel    string
	demoPrefix string
}

func New(cfg Config) *Gateway {
	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &Gateway{
		merchantID: strings.TrimSpace(cfg.MerchantID),
		verifyKey:  strings.TrimSpace(cfg.VerifyKey),
		secretKey:  strings.TrimSpace(cfg.SecretKey),
		sandbox:    cfg.SandboxMode,
		channel:    channel,
		demoPrefix: cfg.DemoPrefix,
	}
}

// Validate reports ErrMissingCredentials when any key is empty. Callers must check it before
// trusting Verify: a signature computed over empty keys proves nothing.
func (g *Gateway) Validate() error {
	if g.merchantID == "" || g.verifyKey == "" || g.secretKey == "" {
		return ErrMissingCredentials
	}

	return nil
}

func (g *Gateway) MerchantID() string {
	return g.merchantID
}

func (g *Gateway) Sandbox() bool {
	return g.sandbox
}

// Host is the base URL of the hosted payment page and merchant API.
func (g *Gateway) Host() string {
	if g.sandbox {
		return sandboxHost
	}

	return productionHost
}

func (g *Gateway) widgetHost() string {
	if g.sandbox {
		return sandboxHost
	}

	return productionWidgetHost
}

// SeamlessScriptURL is the client-side widget script for the storefront.
func (g *Gateway) SeamlessScriptURL() string {
	return g.widgetHost() + "/SeamlessPayment/fiuu-seamless.min.js"
}

func (g *Gateway) VerifyURL() string {
	return g.widgetHost() + "/RMS/verify"
}

// IsDemoOrder reports whether the order id carries the gateway-side integration test prefix.
// Such orders never touch the order store.
func (g *Gateway) IsDemoOrder(orderID string) bool {
	return g.demoPrefix != "" && strings.HasPrefix(orderID, g.demoPrefix)
}
