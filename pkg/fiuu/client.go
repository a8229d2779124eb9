package fiuu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go -package=mock github.com/savioruz/kopi/pkg/fiuu Client

// Client talks to the merchant API. Both calls are plain request/response; GET requeries are
// retried a bounded number of times, refunds never are.
type Client interface {
	Requery(ctx context.Context, orderID string) (RequeryResult, error)
	Refund(ctx context.Context, orderID, amount string) (RefundResult, error)
}

// RequeryResult mirrors the callback fields so a requery can be reconciled like a callback.
type RequeryResult struct {
	TranID    string `json:"tranID"`
	OrderID   string `json:"orderid"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	PayDate   string `json:"paydate"`
	Channel   string `json:"channel"`
	AppCode   string `json:"appcode"`
	ErrorDesc string `json:"error_desc"`
}

type RefundResult map[string]any

type ClientOption func(*client)

func WithBaseURL(u string) ClientOption {
	return func(c *client) {
		c.baseURL = u
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *client) {
		c.timeout = d
	}
}

func WithRetry(count int, wait time.Duration) ClientOption {
	return func(c *client) {
		c.retryCount = count
		c.retryWait = wait
	}
}

const (
	_defaultTimeout    = 15 * time.Second
	_defaultRetryCount = 2
	_defaultRetryWait  = time.Second
	_maxRetryWait      = 5 * time.Second
)

type client struct {
	gw *Gateway
	r  *resty.Client

	baseURL    string
	timeout    time.Duration
	retryCount int
	retryWait  time.Duration
}

func NewClient(gw *Gateway, opts ...ClientOption) Client {
	c := &client{
		gw:         gw,
		baseURL:    gw.Host(),
		timeout:    _defaultTimeout,
		retryCount: _defaultRetryCount,
		retryWait:  _defaultRetryWait,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.r = resty.New().
		SetTimeout(c.timeout).
		SetRetryCount(c.retryCount).
		SetRetryWaitTime(c.retryWait).
		SetRetryMaxWaitTime(_maxRetryWait).
		AddRetryCondition(retryIdempotent)

	return c
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}

	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}

func (c *client) Requery(ctx context.Context, orderID string) (res RequeryResult, err error) {
	if err = c.gw.Validate(); err != nil {
		return res, err
	}

	endpoint := fmt.Sprintf("%s/RMS/API/TxnQuery/%s/%s", c.baseURL, url.PathEscape(c.gw.merchantID), url.PathEscape(orderID))

	resp, err := c.r.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return res, fmt.Errorf("fiuu: requery %s: %w", orderID, err)
	}

	if resp.IsError() {
		return res, fmt.Errorf("fiuu: requery %s failed: %s", orderID, resp.Status())
	}

	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return res, fmt.Errorf("fiuu: requery %s: decode response: %w", orderID, err)
	}

	if res.OrderID == "" {
		res.OrderID = orderID
	}

	return res, nil
}

func (c *client) Refund(ctx context.Context, orderID, amount string) (res RefundResult, err error) {
	if err = c.gw.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.r.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"merchantID": c.gw.merchantID,
			"orderid":    orderID,
			"amount":     amount,
		}).
		Post(c.baseURL + "/RMS/API/Refund")
	if err != nil {
		return nil, fmt.Errorf("fiuu: refund %s: %w", orderID, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("fiuu: refund %s failed: %s", orderID, resp.Status())
	}

	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("fiuu: refund %s: decode response: %w", orderID, err)
	}

	return res, nil
}

// Callback converts a requery answer into the callback shape. It carries no skey: requery
// answers are trusted because they come back over our own TLS request to the gateway host.
func (r RequeryResult) Callback() Callback {
	return Callback{
		TranID:    r.TranID,
		OrderID:   r.OrderID,
		Status:    r.Status,
		Amount:    r.Amount,
		Currency:  r.Currency,
		PayDate:   r.PayDate,
		AppCode:   r.AppCode,
		Channel:   r.Channel,
		ErrorDesc: r.ErrorDesc,
	}
}
