// Package jobs contains the scheduled background jobs that run alongside the
// HTTP server. Jobs are cron-driven and read-only: they observe the system
// and log, leaving all writes to the command handlers.
package jobs
