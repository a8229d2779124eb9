package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/savioruz/kopi/config"
	orderDto "github.com/savioruz/kopi/internal/domains/orders/dto"
	orderService "github.com/savioruz/kopi/internal/domains/orders/service"
	"github.com/savioruz/kopi/internal/domains/payments/dto"
	"github.com/savioruz/kopi/internal/domains/payments/repository"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/savioruz/kopi/pkg/fiuu"
	"github.com/savioruz/kopi/pkg/helper"
	"github.com/savioruz/kopi/pkg/logger"
	"github.com/savioruz/kopi/pkg/metrics"
	"github.com/savioruz/kopi/pkg/postgres"
	"github.com/savioruz/kopi/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/kopi/internal/domains/payments/service PaymentService

type PaymentService interface {
	Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (dto.InitiatePaymentResponse, error)
	HandleCallback(ctx context.Context, source string, cb fiuu.Callback) (dto.CallbackResult, error)
	HandleReturn(ctx context.Context, values url.Values) string
	PublicConfig() (dto.PublicConfigResponse, error)
	Requery(ctx context.Context, orderID string) (dto.RequeryResponse, error)
	Refund(ctx context.Context, orderID string, req dto.RefundRequest) (dto.RefundResponse, error)
	History(ctx context.Context, orderID string, limit int) ([]dto.CallbackHistoryResponse, error)
	SyncPending(ctx context.Context) error
}

type paymentService struct {
	db      postgres.PgxIface
	repo    repository.Querier
	orders  orderService.OrderService
	gateway *fiuu.Gateway
	client  fiuu.Client
	deduper redis.Deduper
	cfg     *config.Config
	logger  logger.Interface
}

func New(
	db postgres.PgxIface,
	r repository.Querier,
	o orderService.OrderService,
	g *fiuu.Gateway,
	c fiuu.Client,
	d redis.Deduper,
	cfg *config.Config,
	l logger.Interface,
) PaymentService {
	return &paymentService{
		db:      db,
		repo:    r,
		orders:  o,
		gateway: g,
		client:  c,
		deduper: d,
		cfg:     cfg,
		logger:  l,
	}
}

const (
	identifier = "service - payments - %s"

	defaultHistoryLimit = 20
)

func (s *paymentService) Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (res dto.InitiatePaymentResponse, err error) {
	if req.Currency == "" {
		req.Currency = fiuu.DefaultCurrency
	}

	if req.CustomerName == "" {
		req.CustomerName = constant.DefaultBillName
	}

	if req.CustomerEmail == "" {
		req.CustomerEmail = constant.DefaultBillEmail
	}

	if req.Description == "" {
		req.Description = "Order #" + req.OrderID
	}

	form, err := s.gateway.Build(fiuu.PaymentRequest{
		OrderID:     req.OrderID,
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		BillName:    req.CustomerName,
		BillEmail:   req.CustomerEmail,
		BillMobile:  req.CustomerPhone,
		BillDesc:    req.Description,
		ReturnURL:   helper.JoinURL(s.cfg.Site.AppURL, constant.PaymentPathReturn, nil),
		NotifyURL:   helper.JoinURL(s.cfg.Site.AppURL, constant.PaymentPathNotify, nil),
		CallbackURL: helper.JoinURL(s.cfg.Site.AppURL, constant.PaymentPathCallback, nil),
	})
	if err != nil {
		s.logger.Error(identifier, " - Initiate - failed to build payment request: %v", err)

		return res, err
	}

	if !s.gateway.IsDemoOrder(req.OrderID) {
		if err = s.orders.Register(ctx, orderDto.RegisterOrderParams{
			OrderID:  req.OrderID,
			Amount:   req.Amount.String(),
			Currency: req.Currency,
		}); err != nil {
			s.logger.Error(identifier, " - Initiate - failed to register order: %v", err)

			return res, err
		}
	}

	s.logger.Info(identifier, " - Initiate - payment request built for order %s", req.OrderID)

	return dto.InitiatePaymentResponse{
		OrderID:    req.OrderID,
		Amount:     req.Amount.String(),
		Currency:   req.Currency,
		PaymentURL: form.URL,
		Action:     form.Action,
		Fields:     form.Fields,
	}, nil
}

// HandleCallback verifies a notify or callback delivery and reconciles the order. The only
// error it returns is a missing merchant configuration; reconcile failures are reported in
// the result so the delivery is still acknowledged.
func (s *paymentService) HandleCallback(ctx context.Context, source string, cb fiuu.Callback) (res dto.CallbackResult, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveCallback(source, time.Since(start).Seconds())
	}()

	res = dto.CallbackResult{
		Source:  source,
		OrderID: cb.OrderID,
		Outcome: cb.Outcome(),
	}

	if err = s.gateway.Validate(); err != nil {
		s.logger.Error(identifier, " - HandleCallback - %v", err)
		metrics.IncCallback(source, "misconfigured")

		return res, failure.InternalError(err)
	}

	res.SignatureValid = s.gateway.Verify(cb)
	res.Demo = s.gateway.IsDemoOrder(cb.OrderID)

	s.journal(ctx, source, cb, res.SignatureValid)

	switch {
	case !res.SignatureValid && !res.Demo:
		s.logger.Error(identifier, " - HandleCallback - invalid signature on %s delivery: %v", source, cb.Fields())
		res.Result = dto.ResultInvalidSignature
	case res.Demo:
		s.logger.Info(identifier, " - HandleCallback - demo order %s acknowledged (status %s)", cb.OrderID, cb.Status)
		res.Result = dto.ResultDemo
	default:
		s.logger.Info(identifier, " - HandleCallback - %s for order %s: %s (%s)", source, cb.OrderID, fiuu.Describe(cb.Status), cb.Status)
		s.reconcile(ctx, cb, &res)
	}

	metrics.IncCallback(source, res.Result)

	return res, nil
}

func (s *paymentService) reconcile(ctx context.Context, cb fiuu.Callback, res *dto.CallbackResult) {
	key := deliveryKey(cb)
	terminal := res.Outcome.Terminal()

	if terminal {
		seen, err := s.deduper.Seen(ctx, key)
		if err != nil {
			s.logger.Warn(identifier, " - reconcile - dedupe lookup failed, reconciling anyway: %v", err)
		}

		if seen {
			s.logger.Info(identifier, " - reconcile - delivery %s already applied", key)
			res.Result = dto.ResultDuplicate

			return
		}
	}

	rec, err := s.orders.Reconcile(ctx, cb.OrderID, res.Outcome, orderDto.PaymentMetaFromCallback(cb))
	if err != nil {
		s.logger.Error(identifier, " - reconcile - order %s: %v", cb.OrderID, err)
		metrics.IncReconcile(res.Source, res.Outcome.String(), "error")

		res.Result = dto.ResultReconcileError
		res.ReconcileErr = err

		return
	}

	metrics.IncReconcile(res.Source, res.Outcome.String(), string(rec.Action))

	res.Action = rec.Action
	res.Result = dto.ResultOK

	if terminal {
		if err := s.deduper.Mark(ctx, key); err != nil {
			s.logger.Warn(identifier, " - reconcile - failed to mark delivery %s: %v", key, err)
		}
	}
}

func deliveryKey(cb fiuu.Callback) string {
	return "fiuu:delivery:" + cb.TranID + ":" + cb.Status
}

// HandleReturn picks the storefront page for a browser coming back from the hosted payment
// page. It never touches the order: the return leg is advisory.
func (s *paymentService) HandleReturn(ctx context.Context, values url.Values) string {
	cb, err := fiuu.ParseCallback(values)

	errorPage := helper.JoinURL(s.cfg.Site.AppURL, constant.PagePaymentError, url.Values{
		"order":  {cb.OrderID},
		"status": {cb.Status},
	})

	if err != nil {
		s.logger.Warn(identifier, " - HandleReturn - %v", err)

		return errorPage
	}

	if err = s.gateway.Validate(); err != nil {
		s.logger.Error(identifier, " - HandleReturn - %v", err)

		return errorPage
	}

	valid := s.gateway.Verify(cb)

	s.journal(ctx, constant.CallbackSourceReturn, cb, valid)

	if !valid {
		s.logger.Error(identifier, " - HandleReturn - invalid signature on return for order %s: %v", cb.OrderID, cb.Fields())

		return errorPage
	}

	switch cb.Outcome() {
	case fiuu.OutcomeSuccess:
		return helper.JoinURL(s.cfg.Site.AppURL, constant.PagePaymentSuccess, url.Values{
			"order": {cb.OrderID},
			"txn":   {cb.TranID},
		})
	case fiuu.OutcomeFailed:
		return helper.JoinURL(s.cfg.Site.AppURL, constant.PagePaymentFailed, url.Values{
			"order":  {cb.OrderID},
			"status": {cb.Status},
		})
	default:
		return errorPage
	}
}

func (s *paymentService) PublicConfig() (dto.PublicConfigResponse, error) {
	if s.gateway.MerchantID() == "" {
		s.logger.Error(identifier, " - PublicConfig - merchant id is not configured")

		return dto.PublicConfigResponse{}, failure.InternalError(fiuu.ErrMissingCredentials)
	}

	return dto.PublicConfigResponse{
		MerchantID:  s.gateway.MerchantID(),
		SandboxMode: s.gateway.Sandbox(),
		ScriptURL:   s.gateway.SeamlessScriptURL(),
		VerifyURL:   s.gateway.VerifyURL(),
	}, nil
}

func (s *paymentService) Requery(ctx context.Context, orderID string) (dto.RequeryResponse, error) {
	res, err := s.client.Requery(ctx, orderID)
	if err != nil {
		metrics.IncRequery("error")
		s.logger.Error(identifier, " - Requery - %v", err)

		return dto.RequeryResponse{}, gatewayFailure(err)
	}

	metrics.IncRequery("ok")

	return dto.RequeryResponse{}.FromResult(res), nil
}

func (s *paymentService) Refund(ctx context.Context, orderID string, req dto.RefundRequest) (dto.RefundResponse, error) {
	res, err := s.client.Refund(ctx, orderID, req.Amount.String())
	if err != nil {
		s.logger.Error(identifier, " - Refund - %v", err)

		return dto.RefundResponse{}, gatewayFailure(err)
	}

	s.logger.Info(identifier, " - Refund - refund of %s requested for order %s", req.Amount, orderID)

	return dto.RefundResponse{
		OrderID: orderID,
		Amount:  req.Amount.String(),
		Gateway: res,
	}, nil
}

func (s *paymentService) History(ctx context.Context, orderID string, limit int) ([]dto.CallbackHistoryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := s.repo.ListPaymentCallbacksByOrder(ctx, s.db, repository.ListPaymentCallbacksByOrderParams{
		OrderID: orderID,
		Limit:   int32(limit),
	})
	if err != nil {
		s.logger.Error(identifier, " - History - failed to list callbacks: %v", err)

		return nil, failure.InternalError(err)
	}

	res := make([]dto.CallbackHistoryResponse, 0, len(rows))
	for _, row := range rows {
		item, err := dto.CallbackHistoryResponse{}.FromModel(row)
		if err != nil {
			s.logger.Warn(identifier, " - History - %v", err)
		}

		res = append(res, item)
	}

	return res, nil
}

// SyncPending asks the gateway about orders that have been pending for too long and applies
// any settled result. Requery answers carry no skey and are applied as returned.
func (s *paymentService) SyncPending(ctx context.Context) error {
	if err := s.gateway.Validate(); err != nil {
		return err
	}

	orders, err := s.orders.ListStalePending(ctx, s.cfg.Fiuu.RequeryAfter, s.cfg.Fiuu.RequeryBatch)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if s.gateway.IsDemoOrder(o.OrderID) {
			continue
		}

		res, err := s.client.Requery(ctx, o.OrderID)
		if err != nil {
			metrics.IncRequery("error")
			s.logger.Warn(identifier, " - SyncPending - requery %s: %v", o.OrderID, err)

			continue
		}

		metrics.IncRequery("ok")

		cb := res.Callback()
		if cb.OrderID != o.OrderID {
			s.logger.Warn(identifier, " - SyncPending - requery for %s answered for %s, ignoring", o.OrderID, cb.OrderID)

			continue
		}

		outcome := cb.Outcome()
		if !outcome.Terminal() {
			continue
		}

		s.journal(ctx, constant.CallbackSourceRequery, cb, false)

		rec, err := s.orders.Reconcile(ctx, o.OrderID, outcome, orderDto.PaymentMetaFromCallback(cb))
		if err != nil {
			metrics.IncReconcile(constant.CallbackSourceRequery, outcome.String(), "error")
			s.logger.Error(identifier, " - SyncPending - reconcile %s: %v", o.OrderID, err)

			continue
		}

		metrics.IncReconcile(constant.CallbackSourceRequery, outcome.String(), string(rec.Action))
	}

	return nil
}

// journal records every inbound result. It is best effort: a failed insert never changes
// how the delivery is answered.
func (s *paymentService) journal(ctx context.Context, source string, cb fiuu.Callback, signatureValid bool) {
	payload, err := json.Marshal(cb.Fields())
	if err != nil {
		s.logger.Error(identifier, " - journal - failed to marshal payload: %v", err)

		return
	}

	if err = s.repo.InsertPaymentCallback(ctx, s.db, repository.InsertPaymentCallbackParams{
		ID:             pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Source:         source,
		TranID:         cb.TranID,
		OrderID:        cb.OrderID,
		Status:         cb.Status,
		SignatureValid: signatureValid,
		Outcome:        cb.Outcome().String(),
		Payload:        payload,
	}); err != nil {
		s.logger.Error(identifier, " - journal - failed to insert %s callback: %v", source, err)
	}
}

func gatewayFailure(err error) error {
	if errors.Is(err, fiuu.ErrMissingCredentials) {
		return failure.InternalError(err)
	}

	return failure.BadGateway(err)
}
