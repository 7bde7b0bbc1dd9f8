package repository

import (
	"StudyHub/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepo interface {
	UpsertTopicProgress(ctx context.Context, progress *model.TopicProgress) error
	ListByUser(ctx context.Context, userID uint64) ([]*model.TopicProgress, error)
	ListByCourseType(ctx context.Context, userID uint64, courseType string) ([]*model.TopicProgress, error)
}

type progressRepoImpl struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepo {
	return &progressRepoImpl{db: db}
}

func (s *progressRepoImpl) UpsertTopicProgress(ctx context.Context, progress *model.TopicProgress) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"topic_name", "topic_type", "course_type", "progress_percentage", "total_time_seconds", "last_studied_at", "updated_at"}),
	}).Create(progress).Error
}

func (s *progressRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.TopicProgress, error) {
	records := make([]*model.TopicProgress, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error
	return records, err
}

func (s *progressRepoImpl) ListByCourseType(ctx context.Context, userID uint64, courseType string) ([]*model.TopicProgress, error) {
	records := make([]*model.TopicProgress, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND course_type = ?", userID, courseType).
		Find(&records).Error
	return records, err
}
