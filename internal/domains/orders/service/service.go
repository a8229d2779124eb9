package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/domains/orders/dto"
	"github.com/savioruz/kopi/internal/domains/orders/repository"
	"github.com/savioruz/kopi/pkg/constant"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/savioruz/kopi/pkg/fiuu"
	"github.com/savioruz/kopi/pkg/helper"
	"github.com/savioruz/kopi/pkg/logger"
	"github.com/savioruz/kopi/pkg/postgres"
	"github.com/savioruz/kopi/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/kopi/internal/domains/orders/service OrderService

type OrderService interface {
	Register(ctx context.Context, req dto.RegisterOrderParams) error
	Reconcile(ctx context.Context, orderID string, outcome fiuu.Outcome, meta dto.PaymentMeta) (dto.ReconcileResult, error)
	GetPayment(ctx context.Context, orderID string) (dto.OrderPaymentResponse, error)
	ListStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]dto.StaleOrder, error)
}

type orderService struct {
	db      postgres.PgxIface
	repo    repository.Querier
	cache   redis.IRedisCache
	gateway *fiuu.Gateway
	cfg     *config.Config
	logger  logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, c redis.IRedisCache, g *fiuu.Gateway, cfg *config.Config, l logger.Interface) OrderService {
	return &orderService{
		db:      db,
		repo:    r,
		cache:   c,
		gateway: g,
		cfg:     cfg,
		logger:  l,
	}
}

const (
	identifier = "service - orders - %s"

	cachePaymentKey = "order-payment"
)

// transitions lists, per target status, the statuses an order may move from.
// processing is absorbing and nothing moves back to pending.
var transitions = map[string][]string{
	constant.OrderStatusProcessing: {constant.OrderStatusPending, constant.OrderStatusFailed},
	constant.OrderStatusFailed:     {constant.OrderStatusPending},
}

func targetStatus(outcome fiuu.Outcome) (string, bool) {
	switch outcome {
	case fiuu.OutcomeSuccess:
		return constant.OrderStatusProcessing, true
	case fiuu.OutcomeFailed:
		return constant.OrderStatusFailed, true
	default:
		return "", false
	}
}

func (s *orderService) Register(ctx context.Context, req dto.RegisterOrderParams) error {
	if err := s.repo.UpsertPendingOrder(ctx, s.db, repository.UpsertPendingOrderParams{
		ID:       req.OrderID,
		Amount:   req.Amount,
		Currency: req.Currency,
	}); err != nil {
		s.logger.Error(identifier, " - Register - failed to upsert order: %v", err)

		return failure.InternalError(err)
	}

	s.invalidate(ctx, req.OrderID)

	return nil
}

// Reconcile applies a verified gateway outcome to the order. Replaying the same outcome is
// harmless: the status update is conditional and the metadata upsert overwrites in place.
func (s *orderService) Reconcile(ctx context.Context, orderID string, outcome fiuu.Outcome, meta dto.PaymentMeta) (res dto.ReconcileResult, err error) {
	res = dto.ReconcileResult{
		OrderID: orderID,
		Outcome: outcome.String(),
	}

	if s.gateway.IsDemoOrder(orderID) {
		s.logger.Info(identifier, " - Reconcile - demo order %s skipped", orderID)
		res.Action = dto.ActionSkipped

		return res, nil
	}

	target, ok := targetStatus(outcome)
	if !ok {
		s.logger.Info(identifier, " - Reconcile - order %s is still pending at the gateway (status %s)", orderID, meta.PaymentStatus)
		res.Action = dto.ActionNone

		return res, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, " - Reconcile - failed to begin transaction: %v", err)

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, " - Reconcile - failed to rollback transaction: %v", err)
		}
	}(tx, ctx)

	affected, err := s.repo.TransitionPaymentStatus(ctx, tx, repository.TransitionPaymentStatusParams{
		PaymentStatus: target,
		ID:            orderID,
		FromStatuses:  transitions[target],
	})
	if err != nil {
		s.logger.Error(identifier, " - Reconcile - failed to update payment status: %v", err)

		return res, failure.InternalError(err)
	}

	res.Action = dto.ActionUpdated
	res.Status = target

	if affected == 0 {
		current, err := s.repo.GetOrderPaymentStatus(ctx, tx, orderID)
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn(identifier, " - Reconcile - order %s not found", orderID)

			return res, failure.NotFound("order " + orderID + " not found")
		}

		if err != nil {
			s.logger.Error(identifier, " - Reconcile - failed to get payment status: %v", err)

			return res, failure.InternalError(err)
		}

		res.Status = current

		if current != target {
			s.logger.Warn(identifier, " - Reconcile - order %s is %s, ignoring %s result", orderID, current, outcome)
			res.Action = dto.ActionIgnored

			return res, nil
		}

		res.Action = dto.ActionDuplicate
	}

	keys, values := meta.Pairs(outcome)
	if err = s.repo.UpsertOrderMeta(ctx, tx, repository.UpsertOrderMetaParams{
		OrderID:    orderID,
		MetaKeys:   keys,
		MetaValues: values,
	}); err != nil {
		s.logger.Error(identifier, " - Reconcile - failed to save payment meta: %v", err)

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, " - Reconcile - failed to commit transaction: %v", err)

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx, orderID)

	s.logger.Info(identifier, " - Reconcile - order %s %s (%s)", orderID, res.Action, res.Status)

	return res, nil
}

func (s *orderService) GetPayment(ctx context.Context, orderID string) (res dto.OrderPaymentResponse, err error) {
	cacheKey := helper.BuildCacheKey(cachePaymentKey, orderID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		s.logger.Debug(identifier, " - GetPayment - cache hit %s", orderID)

		return res, nil
	}

	order, err := s.repo.GetOrder(ctx, s.db, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return dto.OrderPaymentResponse{}, failure.NotFound("order " + orderID + " not found")
	}

	if err != nil {
		s.logger.Error(identifier, " - GetPayment - failed to get order: %v", err)

		return dto.OrderPaymentResponse{}, failure.InternalError(err)
	}

	meta, err := s.repo.ListOrderMeta(ctx, s.db, orderID)
	if err != nil {
		s.logger.Error(identifier, " - GetPayment - failed to list order meta: %v", err)

		return dto.OrderPaymentResponse{}, failure.InternalError(err)
	}

	res = res.FromModel(order, meta)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration); err != nil {
		s.logger.Error(identifier, " - GetPayment - failed to set cache: %v", err)
	}

	return res, nil
}

func (s *orderService) ListStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]dto.StaleOrder, error) {
	rows, err := s.repo.ListStalePendingOrders(ctx, s.db, repository.ListStalePendingOrdersParams{
		InitiatedBefore: helper.PgTimestamptz(time.Now().Add(-olderThan)),
		RowLimit:        int32(limit),
	})
	if err != nil {
		s.logger.Error(identifier, " - ListStalePending - failed to list orders: %v", err)

		return nil, failure.InternalError(err)
	}

	res := make([]dto.StaleOrder, 0, len(rows))
	for _, r := range rows {
		res = append(res, dto.StaleOrder{
			OrderID:     r.ID,
			Amount:      r.Amount,
			Currency:    r.Currency,
			Status:      r.PaymentStatus,
			InitiatedAt: r.PaymentInitiatedAt.Time,
		})
	}

	return res, nil
}

func (s *orderService) invalidate(ctx context.Context, orderID string) {
	if err := s.cache.Delete(ctx, helper.BuildCacheKey(cachePaymentKey, orderID)); err != nil {
		s.logger.Warn(identifier, " - invalidate - failed to delete cache for %s: %v", orderID, err)
	}
}
