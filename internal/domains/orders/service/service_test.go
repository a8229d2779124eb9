package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/domains/orders/dto"
	"github.com/savioruz/kopi/internal/domains/orders/mock"
	"github.com/savioruz/kopi/internal/domains/orders/repository"
	"github.com/savioruz/kopi/pkg/failure"
	"github.com/savioruz/kopi/pkg/fiuu"
	log "github.com/savioruz/kopi/pkg/logger/mock"
	"github.com/savioruz/kopi/pkg/redis"
	redisMock "github.com/savioruz/kopi/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service OrderService
	querier *mock.MockQuerier
	pgx     pgxmock.PgxPoolIface
	cache   *redisMock.MockIRedisCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{Cache: config.Cache{Duration: 60}}
	gateway := fiuu.New(fiuu.Config{
		MerchantID: "kopi_Dev",
		VerifyKey:  "v3rify",
		SecretKey:  "s3cr3t",
		DemoPrefix: "DEMO",
	})

	f := fixture{
		querier: mock.NewMockQuerier(ctrl),
		pgx:     mockPgx,
		cache:   redisMock.NewMockIRedisCache(ctrl),
	}
	f.service = New(mockPgx, f.querier, f.cache, gateway, cfg, mockLogger)

	return f
}

var successMeta = dto.PaymentMeta{
	TransactionID: "T1",
	PaymentStatus: "00",
	PaymentDate:   "20240101120000",
	Channel:       "fpx",
	Amount:        "10.00",
	AppCode:       "A1",
}

var failedMeta = dto.PaymentMeta{
	TransactionID: "T2",
	PaymentStatus: "11",
	ErrorDesc:     "Insufficient funds",
}

func TestOrderService_Reconcile(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	t.Run("success: pending order moves to processing", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin()
		f.querier.EXPECT().
			TransitionPaymentStatus(gomock.Any(), gomock.Any(), repository.TransitionPaymentStatusParams{
				PaymentStatus: "processing",
				ID:            "1001",
				FromStatuses:  []string{"pending", "failed"},
			}).
			Return(int64(1), nil)
		f.querier.EXPECT().
			UpsertOrderMeta(gomock.Any(), gomock.Any(), repository.UpsertOrderMetaParams{
				OrderID: "1001",
				MetaKeys: []string{
					"_fiuu_transaction_id",
					"_fiuu_payment_status",
					"_fiuu_payment_date",
					"_fiuu_payment_channel",
					"_fiuu_payment_amount",
					"_fiuu_app_code",
				},
				MetaValues: []string{"T1", "00", "20240101120000", "fpx", "10.00", "A1"},
			}).
			Return(nil)
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()
		f.cache.EXPECT().Delete(gomock.Any(), "kopi:cache:order-payment:1001").Return(nil)

		res, err := f.service.Reconcile(ctx, "1001", fiuu.OutcomeSuccess, successMeta)

		assert.NoError(t, err)
		assert.Equal(t, dto.ActionUpdated, res.Action)
		assert.Equal(t, "processing", res.Status)
		assert.Equal(t, "success", res.Outcome)
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("success: failed result only moves pending orders", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin()
		f.querier.EXPECT().
			TransitionPaymentStatus(gomock.Any(), gomock.Any(), repository.TransitionPaymentStatusParams{
				PaymentStatus: "failed",
				ID:            "1002",
				FromStatuses:  []string{"pending"},
			}).
			Return(int64(1), nil)
		f.querier.EXPECT().
			UpsertOrderMeta(gomock.Any(), gomock.Any(), repository.UpsertOrderMetaParams{
				OrderID:    "1002",
				MetaKeys:   []string{"_fiuu_transaction_id", "_fiuu_payment_status", "_fiuu_error_desc"},
				MetaValues: []string{"T2", "11", "Insufficient funds"},
			}).
			Return(nil)
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.service.Reconcile(ctx, "1002", fiuu.OutcomeFailed, failedMeta)

		assert.NoError(t, err)
		assert.Equal(t, dto.ActionUpdated, res.Action)
		assert.Equal(t, "failed", res.Status)
	})

	t.Run("duplicate: same result twice refreshes meta only", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin()
		f.querier.EXPECT().TransitionPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.querier.EXPECT().GetOrderPaymentStatus(gomock.Any(), gomock.Any(), "1001").Return("processing", nil)
		f.querier.EXPECT().UpsertOrderMeta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.service.Reconcile(ctx, "1001", fiuu.OutcomeSuccess, successMeta)

		assert.NoError(t, err)
		assert.Equal(t, dto.ActionDuplicate, res.Action)
		assert.Equal(t, "processing", res.Status)
	})

	t.Run("ignored: failed after success never regresses", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin()
		f.querier.EXPECT().TransitionPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.querier.EXPECT().GetOrderPaymentStatus(gomock.Any(), gomock.Any(), "1001").Return("processing", nil)
		f.pgx.ExpectRollback()

		res, err := f.service.Reconcile(ctx, "1001", fiuu.OutcomeFailed, failedMeta)

		assert.NoError(t, err)
		assert.Equal(t, dto.ActionIgnored, res.Action)
		assert.Equal(t, "processing", res.Status)
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("none: pending result does not touch the store", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.service.Reconcile(ctx, "1001", fiuu.OutcomePending, dto.PaymentMeta{PaymentStatus: "22"})

		assert.NoError(t, err)
		assert.Equal(t, dto.ActionNone, res.Action)
		assert.Equal(t, "pending", res.Outcome)
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("skipped: demo order", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.service.Reconcile(ctx, "DEMO-42", fiuu.OutcomeSuccess, successMeta)

		assert.NoError(t, err)
		assert.Equal(t, dto.ActionSkipped, res.Action)
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("error: order not found", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin()
		f.querier.EXPECT().TransitionPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.querier.EXPECT().GetOrderPaymentStatus(gomock.Any(), gomock.Any(), "404").Return("", pgx.ErrNoRows)
		f.pgx.ExpectRollback()

		_, err := f.service.Reconcile(ctx, "404", fiuu.OutcomeSuccess, successMeta)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: begin transaction", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin().WillReturnError(mockError)

		_, err := f.service.Reconcile(ctx, "1001", fiuu.OutcomeSuccess, successMeta)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: update status", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin()
		f.querier.EXPECT().TransitionPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), mockError)
		f.pgx.ExpectRollback()

		_, err := f.service.Reconcile(ctx, "1001", fiuu.OutcomeSuccess, successMeta)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: commit", func(t *testing.T) {
		f := newFixture(t)

		f.pgx.ExpectBegin()
		f.querier.EXPECT().TransitionPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.querier.EXPECT().UpsertOrderMeta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.pgx.ExpectCommit().WillReturnError(mockError)
		f.pgx.ExpectRollback()

		_, err := f.service.Reconcile(ctx, "1001", fiuu.OutcomeSuccess, successMeta)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestOrderService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.querier.EXPECT().
			UpsertPendingOrder(gomock.Any(), gomock.Any(), repository.UpsertPendingOrderParams{
				ID:       "1001",
				Amount:   "10.00",
				Currency: "MYR",
			}).
			Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		err := f.service.Register(ctx, dto.RegisterOrderParams{OrderID: "1001", Amount: "10.00", Currency: "MYR"})

		assert.NoError(t, err)
	})

	t.Run("error: upsert", func(t *testing.T) {
		f := newFixture(t)

		f.querier.EXPECT().UpsertPendingOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error"))

		err := f.service.Register(ctx, dto.RegisterOrderParams{OrderID: "1001", Amount: "10.00", Currency: "MYR"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestOrderService_GetPayment(t *testing.T) {
	ctx := context.Background()
	order := repository.Order{
		ID:            "1001",
		Amount:        "10.00",
		Currency:      "MYR",
		PaymentStatus: "processing",
		UpdatedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	t.Run("success: from database", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "kopi:cache:order-payment:1001", gomock.Any()).Return(redis.ErrCacheMiss)
		f.querier.EXPECT().GetOrder(gomock.Any(), gomock.Any(), "1001").Return(order, nil)
		f.querier.EXPECT().ListOrderMeta(gomock.Any(), gomock.Any(), "1001").Return([]repository.ListOrderMetaRow{
			{MetaKey: "_fiuu_transaction_id", MetaValue: "T1"},
		}, nil)
		f.cache.EXPECT().Save(gomock.Any(), "kopi:cache:order-payment:1001", gomock.Any(), 60).Return(nil)

		res, err := f.service.GetPayment(ctx, "1001")

		assert.NoError(t, err)
		assert.Equal(t, "processing", res.PaymentStatus)
		assert.Equal(t, "T1", res.Meta["_fiuu_transaction_id"])
	})

	t.Run("success: from cache", func(t *testing.T) {
		f := newFixture(t)

		cached := dto.OrderPaymentResponse{OrderID: "1001", PaymentStatus: "failed"}
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).SetArg(2, cached).Return(nil)

		res, err := f.service.GetPayment(ctx, "1001")

		assert.NoError(t, err)
		assert.Equal(t, "failed", res.PaymentStatus)
	})

	t.Run("error: not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.ErrCacheMiss)
		f.querier.EXPECT().GetOrder(gomock.Any(), gomock.Any(), "404").Return(repository.Order{}, pgx.ErrNoRows)

		_, err := f.service.GetPayment(ctx, "404")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestOrderService_ListStalePending(t *testing.T) {
	ctx := context.Background()
	initiated := time.Now().Add(-time.Hour)

	f := newFixture(t)

	f.querier.EXPECT().
		ListStalePendingOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.ListStalePendingOrdersParams) ([]repository.ListStalePendingOrdersRow, error) {
			assert.Equal(t, int32(20), arg.RowLimit)
			assert.True(t, arg.InitiatedBefore.Time.Before(time.Now().Add(-14*time.Minute)))

			return []repository.ListStalePendingOrdersRow{
				{ID: "1001", Amount: "10.00", Currency: "MYR", PaymentStatus: "pending", PaymentInitiatedAt: pgtype.Timestamptz{Time: initiated, Valid: true}},
				{ID: "1002", Amount: "12.00", Currency: "MYR", PaymentStatus: "failed", PaymentInitiatedAt: pgtype.Timestamptz{Time: initiated, Valid: true}},
			}, nil
		})

	res, err := f.service.ListStalePending(ctx, 15*time.Minute, 20)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "1001", res[0].OrderID)
	assert.Equal(t, initiated, res[0].InitiatedAt)
	assert.Equal(t, "failed", res[1].Status)
}
