package jobs

import (
	"context"
	"log/slog"

	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/commands"
	"github.com/zaidkabb/aerologix-backend/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob periodically scans the in-flight shipments and reports
// every one whose estimated delivery has passed without a recorded delivery.
// The job only observes; it never mutates shipment state.
type OverdueShipmentJob struct {
	uowFactory commands.ShipmentUoWFactory
	clock      ports.Clock
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOverdueShipmentJob creates a job that checks for overdue shipments every minute.
func NewOverdueShipmentJob(
	uowFactory commands.ShipmentUoWFactory,
	clock ports.Clock,
	logger *slog.Logger,
) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		uowFactory: uowFactory,
		clock:      clock,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue shipment scan, running at the top of every minute.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started (running every minute)")
	return nil
}

// Stop stops the overdue shipment job.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}

// scan loads the in-flight shipments and logs every overdue one.
func (j *OverdueShipmentJob) scan(ctx context.Context) error {
	uow := j.uowFactory.Create()

	shipments, err := uow.ShipmentRepository().GetAllInTransit(ctx)
	if err != nil {
		return err
	}

	now := j.clock.Now()
	for _, s := range shipments {
		if s.EstimatedDelivery().After(now) {
			continue
		}

		j.logger.WarnContext(ctx, "Shipment is overdue",
			"trackingNumber", s.TrackingNumber().String(),
			"destination", s.Destination(),
			"status", s.Status().String(),
			"estimatedDelivery", s.EstimatedDelivery(),
			"overdueFor", now.Sub(s.EstimatedDelivery()).String(),
		)
	}

	return nil
}
