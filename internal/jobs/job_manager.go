package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	capacityJob *CapacityReconciliationJob
}

// NewJobManager creates a job manager with all scheduled jobs wired.
func NewJobManager(db *gorm.DB, capacitySpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		capacityJob: NewCapacityReconciliationJob(db, capacitySpec, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.capacityJob.Start(); err != nil {
		return fmt.Errorf("failed to start capacity reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.capacityJob.Stop()
}
