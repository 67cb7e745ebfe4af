package cmd

import "time"

// Config carries process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// LockTimeout bounds how long a transaction waits for a row lock.
	LockTimeout time.Duration

	// ReportSchedule is the six-field cron expression for the backlog
	// report job.
	ReportSchedule string
}
