// Package jobs provides scheduled background tasks for the logistics system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(db, cronSpec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is CapacityReconciliationJob, which recomputes the
// used capacity of planned and in-progress routes from the route-delivery
// association table. Write paths maintain the figure transactionally; the
// job exists to repair drift after manual interventions.
package jobs
