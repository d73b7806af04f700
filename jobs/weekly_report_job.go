// File: /jobs/weekly_report_job.go
package jobs

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"drivecalc-api/models"
	"drivecalc-api/repositories"
	"drivecalc-api/services"
)

// WeeklyReportJob emails last week's earnings summary to every driver who
// opted in, once per week on Monday.
type WeeklyReportJob struct {
	db           *gorm.DB
	reports      *services.ReportService
	emailService *services.EmailService
	logger       *zap.Logger
	ticker       *time.Ticker
	done         chan bool
	lastRunWeek  string
}

// NewWeeklyReportJob creates the job. interval controls how often the Monday
// check runs; anything up to a few hours is fine since a week is only
// reported once.
func NewWeeklyReportJob(db *gorm.DB, emailService *services.EmailService, logger *zap.Logger, interval time.Duration) *WeeklyReportJob {
	calcRepo := repositories.NewCalculationRepository(db)

	return &WeeklyReportJob{
		db:           db,
		reports:      services.NewReportService(calcRepo),
		emailService: emailService,
		logger:       logger,
		ticker:       time.NewTicker(interval),
		done:         make(chan bool),
	}
}

// Start begins the job
func (j *WeeklyReportJob) Start() {
	j.logger.Info("Weekly report job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.run(time.Now())
			case <-j.done:
				j.logger.Info("Weekly report job stopped")
				return
			}
		}
	}()
}

// Stop stops the job
func (j *WeeklyReportJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

// run sends the reports when called on a Monday that hasn't been handled yet.
func (j *WeeklyReportJob) run(now time.Time) {
	if now.Weekday() != time.Monday {
		return
	}

	week := now.Format("2006-01-02")
	if j.lastRunWeek == week {
		return
	}
	j.lastRunWeek = week

	j.logger.Info("Sending weekly reports", zap.String("week", week))

	var users []models.User
	err := j.db.Joins("JOIN user_settings ON user_settings.user_id = users.id").
		Where("user_settings.weekly_report_email = ? AND users.email_verified = ?", true, true).
		Find(&users).Error
	if err != nil {
		j.logger.Error("Failed to load weekly report recipients", zap.Error(err))
		return
	}

	// Report the week that just ended, not the one starting today.
	reference := now.AddDate(0, 0, -7)

	for _, user := range users {
		summary, err := j.reports.WeeklySummary(user.ID, reference)
		if err != nil {
			j.logger.Error("Failed to build weekly summary", zap.String("user_id", user.ID), zap.Error(err))
			continue
		}
		if summary.WorkedDays == 0 {
			continue
		}

		if err := j.emailService.SendWeeklyReportEmail(user.Email, user.Name, summary); err != nil {
			j.logger.Error("Failed to send weekly report", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
}
