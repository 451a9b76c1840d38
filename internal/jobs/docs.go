// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the orchestrator needs.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every three seconds to deliver queued assignment
// notifications to the dispatch service, with exponential backoff on failure
// 2. AssignmentSweepJob - Runs every ten seconds to retry agent assignment for
// accepted orders that are still waiting for an agent
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxUoWFactory, notifier, sweepHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The relay treats delivery failures as routine: the message is rescheduled
//   and the failure is logged at debug level, not escalated
// - The sweep treats an exhausted agent pool as routine and ends quietly
// - Failed job starts will stop any already running jobs
package jobs
