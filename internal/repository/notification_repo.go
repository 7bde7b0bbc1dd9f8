package repository

import (
	"StudyHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepo interface {
	GetPreference(ctx context.Context, userID uint64) (*model.NotificationPreference, error)
	UpsertPreference(ctx context.Context, pref *model.NotificationPreference) error
}

type notificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &notificationRepoImpl{db: db}
}

func (s *notificationRepoImpl) GetPreference(ctx context.Context, userID uint64) (*model.NotificationPreference, error) {
	var pref model.NotificationPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (s *notificationRepoImpl) UpsertPreference(ctx context.Context, pref *model.NotificationPreference) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"push_enabled", "push_endpoint", "streak_reminder_enabled", "study_reminder_enabled",
			"achievement_notifications", "reminder_time", "updated_at",
		}),
	}).Create(pref).Error
}
