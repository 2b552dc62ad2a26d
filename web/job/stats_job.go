package job

import (
	"github.com/fzscripts/fzscripts/database"
	"github.com/fzscripts/fzscripts/database/model"
	"github.com/fzscripts/fzscripts/logger"
)

// StatsJob logs user, script and download totals for operators.
type StatsJob struct{}

func NewStatsJob() *StatsJob {
	return new(StatsJob)
}

// Run implements the cron Job interface.
func (j *StatsJob) Run() {
	db := database.GetDB()

	var users, scripts int64
	var downloads int64
	if err := db.Model(&model.User{}).Count(&users).Error; err != nil {
		logger.Warning("stats job err:", err)
		return
	}
	if err := db.Model(&model.Script{}).Count(&scripts).Error; err != nil {
		logger.Warning("stats job err:", err)
		return
	}
	row := db.Model(&model.Script{}).Select("COALESCE(SUM(downloads), 0)").Row()
	if err := row.Scan(&downloads); err != nil {
		logger.Warning("stats job err:", err)
		return
	}

	logger.Infof("stats: %d users, %d scripts, %d downloads", users, scripts, downloads)
}
