package jobs

import (
	"context"
	"log/slog"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderStatsHandler is the query side the stats job reads from.
type OrderStatsHandler interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (queries.CountOrdersByStatusQueryResponse, error)
}

// OrderStatsJob periodically logs how many orders the store holds, in total
// and per status.
type OrderStatsJob struct {
	handler  OrderStatsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates a stats job. The schedule is a cron expression
// with a leading seconds field.
func NewOrderStatsJob(handler OrderStatsHandler, schedule string, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Run collects and logs the statistics once.
func (j *OrderStatsJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		return err
	}

	attrs := make([]any, 0, 2+2*len(order.Statuses()))
	attrs = append(attrs, "total", stats.Total)
	for _, s := range order.Statuses() {
		attrs = append(attrs, s.String(), stats.ByStatus[s])
	}
	j.logger.InfoContext(ctx, "Order stats", attrs...)

	return nil
}

// Stop stops the scheduler and waits for a running collection to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
