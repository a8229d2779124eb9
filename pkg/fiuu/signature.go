package fiuu

import (
	"crypto/md5" //nolint:gosec // mandated by the gateway protocol
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

func md5hex(parts ...string) string {
	h := md5.New() //nolint:gosec
	for _, p := range parts {
		h.Write([]byte(p))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// VCode signs an outbound payment request: md5(amount + merchantID + orderID + verifyKey).
func VCode(amount, merchantID, orderID, verifyKey string) string {
	return md5hex(amount, merchantID, orderID, verifyKey)
}

// Skey computes the callback signature in two stages:
//
//	pre  = md5(tranID + orderID + status + merchantID + amount + currency)
//	skey = md5(paydate + merchantID + pre + appcode + secretKey)
//
// amount and paydate are hashed exactly as received.
func Skey(cb Callback, merchantID, secretKey string) string {
	pre := md5hex(cb.TranID, cb.OrderID, cb.Status, merchantID, cb.Amount+cb.Currency)

	return md5hex(cb.PayDate, merchantID, pre, cb.AppCode, secretKey)
}

// Verify reports whether the callback skey matches the one recomputed with the merchant
// secret. It never fails; a callback with a bad or empty skey is simply not trusted.
func (g *Gateway) Verify(cb Callback) bool {
	if cb.Skey == "" {
		return false
	}

	expected := Skey(cb, g.merchantID, g.secretKey)
	received := strings.ToLower(strings.TrimSpace(cb.Skey))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}

// VCode signs req with the merchant verify key.
func (g *Gateway) VCode(req PaymentRequest) string {
	return VCode(req.Amount, g.merchantID, req.OrderID, g.verifyKey)
}
