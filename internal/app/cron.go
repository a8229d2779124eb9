package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/kopi/config"
	"github.com/savioruz/kopi/internal/domains/payments/service"
	"github.com/savioruz/kopi/pkg/logger"
)

const requeryJobTimeout = 2 * time.Minute

// Cron schedules the pending payment requery. The returned scheduler is started unless the
// schedule could not be parsed.
func Cron(payments service.PaymentService, cfg *config.Config, l logger.Interface) *cron.Cron {
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err := c.AddFunc(cfg.Schedule.PaymentRequery, func() {
		ctx, cancel := context.WithTimeout(context.Background(), requeryJobTimeout)
		defer cancel()

		if err := payments.SyncPending(ctx); err != nil {
			l.Error("Cron job - SyncPending failed: %v", err)
		}
	})
	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return c
	}

	c.Start()

	return c
}
