package jobs

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DailyReportJob logs a morning summary of the day's orders so the shift
// starts with a picture of the workload: orders needing attention, orders
// mid-picking and the outstanding balance across the day.
type DailyReportJob struct {
	handler queries.GetOrdersByDeliveryDateQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyReportJob creates the morning report job.
func NewDailyReportJob(handler queries.GetOrdersByDeliveryDateQueryHandler, logger *slog.Logger) *DailyReportJob {
	return &DailyReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_report_job"),
	}
}

// Start schedules the report at 07:00 every day.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 7 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started (running at 07:00)")
	return nil
}

// Stop stops the report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}

func (j *DailyReportJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOrdersByDeliveryDateQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report job failed to build query", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		return
	}

	needsAttention := 0
	inProgress := 0
	ready := 0
	outstanding := kernel.ZeroMoney()

	for _, o := range orders {
		switch o.Category {
		case order.CategoryNeedsAttention.String():
			needsAttention++
		case order.CategoryInProgress.String():
			inProgress++
		case order.CategoryReady.String():
			ready++
		}
		if o.Category != order.CategoryInactive.String() {
			outstanding = outstanding.Add(o.BalanceDue)
		}
	}

	j.logger.InfoContext(ctx, "Daily order report",
		"orders", len(orders),
		"needs_attention", needsAttention,
		"in_progress", inProgress,
		"ready", ready,
		"outstanding_balance", outstanding.String(),
	)
}
