package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/route"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CapacityReconciliationJob periodically recomputes the used capacity of
// open routes from the association table. Commands keep the figure current
// on every write; the job repairs drift after manual data fixes or partial
// failures so the capacity check never works from a stale sum.
type CapacityReconciliationJob struct {
	db     *gorm.DB
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCapacityReconciliationJob creates the reconciliation job. The spec is
// a six-field cron expression; an empty spec defaults to every five minutes.
func NewCapacityReconciliationJob(db *gorm.DB, spec string, logger *slog.Logger) *CapacityReconciliationJob {
	if spec == "" {
		spec = "0 */5 * * * *"
	}
	return &CapacityReconciliationJob{
		db:     db,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "capacity_reconciliation_job"),
	}
}

// Start schedules the job.
func (j *CapacityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.Reconcile(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Capacity reconciliation failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job started", "spec", j.spec)
	return nil
}

// Stop stops the job.
func (j *CapacityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job stopped")
}

// Reconcile rewrites used_capacity for planned and in-progress routes where
// the stored figure disagrees with the summed attachments. Completed and
// cancelled routes keep their historical figures.
func (j *CapacityReconciliationJob) Reconcile(ctx context.Context) error {
	result := j.db.WithContext(ctx).Exec(`
		UPDATE routes r
		SET used_capacity = COALESCE((
			SELECT SUM(rd.required_capacity)
			FROM route_deliveries rd
			WHERE rd.route_id = r.id
		), 0)
		WHERE r.status IN (?, ?)
		  AND r.used_capacity <> COALESCE((
			SELECT SUM(rd.required_capacity)
			FROM route_deliveries rd
			WHERE rd.route_id = r.id
		), 0)
	`, route.StatusPlanned.String(), route.StatusInProgress.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		j.logger.InfoContext(ctx, "Route capacities reconciled", "routes", result.RowsAffected)
	}

	return nil
}
