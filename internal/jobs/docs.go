// Package jobs provides scheduled background tasks for the fleet service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager,
// which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(shipmentUoWFactory, clock, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OverdueShipmentJob runs at the top of every minute, scans the in-flight
// shipments and logs a warning for each one whose estimated delivery has
// passed. The job is purely observational: shipment state machines are never
// driven from the scheduler.
package jobs
