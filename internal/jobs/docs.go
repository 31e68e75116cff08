// Package jobs provides scheduled background tasks for the tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PatrolJob - Periodically imports queued movement reports, registering
// new units and applying their reported movements.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(importHandler, cronSpec, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The patrol job logs import failures and keeps its schedule; a missing
// reports directory on one run is expected when no reports are queued yet.
package jobs
