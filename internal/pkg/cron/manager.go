package cron

import (
	"StudyHub/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	streakReminderJob *job.StreakReminderJob
	courseReindexJob  *job.CourseReindexJob
}

func NewCronManager(streakReminderJob *job.StreakReminderJob, courseReindexJob *job.CourseReindexJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		streakReminderJob: streakReminderJob,
		courseReindexJob:  courseReindexJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 每天 20 点提醒，具体到人的提醒时间由偏好过滤
	if _, err := s.engine.AddJob("0 0 20 * * *", s.streakReminderJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.courseReindexJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
