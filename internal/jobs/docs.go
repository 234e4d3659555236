// Package jobs provides scheduled background tasks for the order console.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DailyReportJob - Runs every morning and logs a preparation report for the
// day's orders: how many need attention, how many are mid-picking and how
// much money is still outstanding.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(ordersByDateHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report job uses the cron expression "0 0 7 * * *": once a day at 07:00
// server time, before the preparation shift starts.
package jobs
