package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleOrdersJob periodically sweeps for orders stuck in "pending" status.
// Runs every minute and reports each hit; operators act on the log output,
// the job never mutates order state itself.
type StaleOrdersJob struct {
	handler           queries.GetStalePendingOrdersQueryHandler
	stalePendingAfter time.Duration
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewStaleOrdersJob creates a job that flags orders pending longer than
// stalePendingAfter.
func NewStaleOrdersJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	stalePendingAfter time.Duration,
	logger *slog.Logger,
) *StaleOrdersJob {
	return &StaleOrdersJob{
		handler:           handler,
		stalePendingAfter: stalePendingAfter,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "stale_orders_job"),
	}
}

// Start begins the stale order sweep to run every minute.
func (j *StaleOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().Add(-j.stalePendingAfter)
		query, queryErr := queries.NewGetStalePendingOrdersQuery(cutoff)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale orders job failed to build query", "error", queryErr)
			return
		}

		staleOrders, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale orders job failed", "error", handleErr)
			return
		}

		for _, staleOrder := range staleOrders {
			j.logger.WarnContext(ctx, "Order stuck in pending status",
				"order_id", staleOrder.ID.String(),
				"order_number", staleOrder.OrderNumber,
				"store_id", staleOrder.StoreID,
				"pending_since", staleOrder.OrderDate,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale orders job started (running every minute)")
	return nil
}

// Stop stops the stale order sweep.
func (j *StaleOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale orders job stopped")
}
