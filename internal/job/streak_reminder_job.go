package job

import (
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/logger"
	"StudyHub/internal/pkg/redis"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/repository"
	"StudyHub/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// StreakReminderJob 每日提醒昨天学过但今天还没学的用户
// 多实例部署靠分布式锁保证每天只发一轮
type StreakReminderJob struct {
	streakRepo      repository.StreakRepo
	notificationSvc service.NotificationService
}

func NewStreakReminderJob(streakRepo repository.StreakRepo, notificationSvc service.NotificationService) *StreakReminderJob {
	return &StreakReminderJob{
		streakRepo:      streakRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *StreakReminderJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	today := util.Midnight(time.Now()).Format("2006-01-02")
	lockKey := consts.StreakReminderLock + today
	locked, err := redis.TryLock(ctx, lockKey, traceID, time.Hour, 1)
	if err != nil || !locked {
		return
	}

	yesterday := util.Midnight(time.Now()).AddDate(0, 0, -1).Format("2006-01-02")
	records, err := s.streakRepo.ListByLastStudyDate(ctx, yesterday)
	if err != nil {
		log.ErrorContext(ctx, "list streaks at risk error", "err", err)
		return
	}

	for _, record := range records {
		s.notificationSvc.NotifyStreakAtRisk(ctx, record.UserID, record.CurrentStreak)
	}

	log.InfoContext(ctx, "streak reminder job done", "candidates", len(records))
}
