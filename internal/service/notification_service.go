package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/push"
	"StudyHub/internal/repository"
	"context"
	"fmt"
	log "log/slog"

	"github.com/jinzhu/copier"
)

// NotificationService 通知偏好与推送发送
type NotificationService interface {
	GetPreference(ctx context.Context, userID uint64) (*dto.NotificationPreferenceDTO, error)
	UpdatePreference(ctx context.Context, userID uint64, req *dto.NotificationPreferenceDTO) error
	NotifyAchievementUnlocked(ctx context.Context, userID uint64, achievementName string)
	NotifyStreakAtRisk(ctx context.Context, userID uint64, currentStreak int)
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
	pushClient       *push.Client
}

func NewNotificationService(notificationRepo repository.NotificationRepo, pushClient *push.Client) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		pushClient:       pushClient,
	}
}

// GetPreference 无记录时返回默认偏好
func (s *notificationServiceImpl) GetPreference(ctx context.Context, userID uint64) (*dto.NotificationPreferenceDTO, error) {
	pref, err := s.notificationRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return &dto.NotificationPreferenceDTO{
			StreakReminderEnabled:    true,
			StudyReminderEnabled:     true,
			AchievementNotifications: true,
			ReminderTime:             "20:00:00",
		}, nil
	}
	result := &dto.NotificationPreferenceDTO{}
	_ = copier.Copy(result, pref)
	return result, nil
}

func (s *notificationServiceImpl) UpdatePreference(ctx context.Context, userID uint64, req *dto.NotificationPreferenceDTO) error {
	pref := &model.NotificationPreference{UserID: userID}
	_ = copier.Copy(pref, req)
	if pref.ReminderTime == "" {
		pref.ReminderTime = "20:00:00"
	}
	return s.notificationRepo.UpsertPreference(ctx, pref)
}

// NotifyAchievementUnlocked 成就解锁推送，偏好关闭或无端点时静默跳过
// 推送失败只记日志，不影响调用方
func (s *notificationServiceImpl) NotifyAchievementUnlocked(ctx context.Context, userID uint64, achievementName string) {
	pref, err := s.notificationRepo.GetPreference(ctx, userID)
	if err != nil || pref == nil || !pref.PushEnabled || !pref.AchievementNotifications || pref.PushEndpoint == "" {
		return
	}
	payload := &push.Payload{
		Endpoint: pref.PushEndpoint,
		Title:    "成就解锁",
		Body:     fmt.Sprintf("恭喜解锁成就「%s」", achievementName),
		Tag:      "achievement",
	}
	if err := s.pushClient.Send(ctx, payload); err != nil {
		log.WarnContext(ctx, "NotifyAchievementUnlocked push failed", "user_id", userID, "err", err)
	}
}

// NotifyStreakAtRisk 连续学习中断风险提醒
func (s *notificationServiceImpl) NotifyStreakAtRisk(ctx context.Context, userID uint64, currentStreak int) {
	pref, err := s.notificationRepo.GetPreference(ctx, userID)
	if err != nil || pref == nil || !pref.PushEnabled || !pref.StreakReminderEnabled || pref.PushEndpoint == "" {
		return
	}
	payload := &push.Payload{
		Endpoint: pref.PushEndpoint,
		Title:    "别断了连续学习",
		Body:     fmt.Sprintf("你已连续学习 %d 天，今天学一会儿保住记录吧", currentStreak),
		Tag:      "streak",
	}
	if err := s.pushClient.Send(ctx, payload); err != nil {
		log.WarnContext(ctx, "NotifyStreakAtRisk push failed", "user_id", userID, "err", err)
	}
}
