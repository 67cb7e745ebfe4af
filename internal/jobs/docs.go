// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order workflow.
//
// # Available Jobs
//
// 1. BacklogReportJob - Periodically logs how many orders sit in each status,
// giving operators a cheap view of the processing backlog without a metrics
// stack.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the database handle
//	jobManager := jobs.NewJobManager(db, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report schedule is a six-field cron expression with a seconds column,
// configured per deployment. The default "0 * * * * *" reports once a minute.
//
// # Error Handling
//
// The report job logs query failures and keeps its schedule; a broken report
// run never affects request handling.
package jobs
