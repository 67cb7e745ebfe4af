package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// BacklogReportJob periodically reports how many orders sit in each status.
// The report goes to the structured log, one attribute per status.
type BacklogReportJob struct {
	db       *gorm.DB
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogReportJob creates a job that logs the order backlog on the given
// six-field cron schedule.
func NewBacklogReportJob(db *gorm.DB, schedule string, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		db:       db,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_report_job"),
	}
}

type statusCountRow struct {
	Status string
	Count  int64
}

// Start begins the backlog report job on its configured schedule.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		var rows []statusCountRow
		err := j.db.WithContext(ctx).
			Table("orders").
			Select("status, COUNT(*) AS count").
			Group("status").
			Scan(&rows).Error
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(rows)*2)
		var total int64
		for _, row := range rows {
			attrs = append(attrs, row.Status, row.Count)
			total += row.Count
		}
		attrs = append(attrs, "total", total)

		j.logger.InfoContext(ctx, "Order backlog", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
