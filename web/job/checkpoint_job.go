// Package job contains cron maintenance jobs run by the web server.
package job

import (
	"github.com/fzscripts/fzscripts/database"
	"github.com/fzscripts/fzscripts/logger"
)

// CheckpointJob flushes the SQLite WAL into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements the cron Job interface.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
