// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingRebroadcastJob - Periodically re-offers pending shipments to the
// currently eligible drivers, so shipments created when every driver was
// busy still find a taker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(rebroadcastHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The rebroadcast job runs every 30 seconds. Rebroadcasting is idempotent
// (a driver receiving the same offer twice is harmless), so the schedule
// needs no coordination with the creation-time broadcast.
package jobs
