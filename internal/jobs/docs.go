// Package jobs provides scheduled background tasks for the suggestion service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules have six fields.
//
// # Available Jobs
//
// SettingsRefreshJob reloads the global maximum suggestion count into the settings cache
// read by every suggestion request.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewSettingsRefreshJob(cache, "*/30 * * * * *", 5*time.Second, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A job that fails to start stops every job started before it.
package jobs
