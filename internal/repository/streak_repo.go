package repository

import (
	"StudyHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepo interface {
	GetStreak(ctx context.Context, userID uint64) (*model.StreakRecord, error)
	UpsertStreak(ctx context.Context, record *model.StreakRecord) error
	ListByLastStudyDate(ctx context.Context, date string) ([]*model.StreakRecord, error)
}

type streakRepoImpl struct {
	db *gorm.DB
}

func NewStreakRepo(db *gorm.DB) StreakRepo {
	return &streakRepoImpl{db: db}
}

// GetStreak 无记录返回 nil 而非错误（首次活动前属正常状态）
func (s *streakRepoImpl) GetStreak(ctx context.Context, userID uint64) (*model.StreakRecord, error) {
	var record model.StreakRecord
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// UpsertStreak 按 user_id 原子插入或更新，杜绝先读后写竞态
func (s *streakRepoImpl) UpsertStreak(ctx context.Context, record *model.StreakRecord) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_streak", "longest_streak", "last_study_date", "total_study_days", "updated_at",
		}),
	}).Create(record).Error
}

// ListByLastStudyDate 查找最后学习日期为指定日的用户（连续中断风险提醒）
func (s *streakRepoImpl) ListByLastStudyDate(ctx context.Context, date string) ([]*model.StreakRecord, error) {
	records := make([]*model.StreakRecord, 0)
	err := s.db.WithContext(ctx).
		Where("last_study_date = ?", date).
		Find(&records).Error
	return records, err
}
