package repository

import (
	"StudyHub/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type ScheduleRepo interface {
	CreateSlot(ctx context.Context, slot *model.ScheduledStudy) error
	ListUpcoming(ctx context.Context, userID uint64, from time.Time) ([]*model.ScheduledStudy, error)
	DeleteSlot(ctx context.Context, userID, slotID uint64) (bool, error)
}

type scheduleRepoImpl struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) ScheduleRepo {
	return &scheduleRepoImpl{db: db}
}

func (s *scheduleRepoImpl) CreateSlot(ctx context.Context, slot *model.ScheduledStudy) error {
	return s.db.WithContext(ctx).Create(slot).Error
}

func (s *scheduleRepoImpl) ListUpcoming(ctx context.Context, userID uint64, from time.Time) ([]*model.ScheduledStudy, error) {
	slots := make([]*model.ScheduledStudy, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_date >= ?", userID, from).
		Order("scheduled_date ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

// DeleteSlot 按归属删除，返回是否确有删除
func (s *scheduleRepoImpl) DeleteSlot(ctx context.Context, userID, slotID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", slotID, userID).
		Delete(&model.ScheduledStudy{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
