package repository

import (
	"StudyHub/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudyMetricRepo interface {
	AccumulateDaily(ctx context.Context, metric *model.StudyDailyMetric) error
	ListRange(ctx context.Context, userID uint64, from, to time.Time) ([]*model.StudyDailyMetric, error)
}

type studyMetricRepoImpl struct {
	db *gorm.DB
}

func NewStudyMetricRepo(db *gorm.DB) StudyMetricRepo {
	return &studyMetricRepoImpl{db: db}
}

// AccumulateDaily 按 (user_id, metric_date) 累加当日指标
func (s *studyMetricRepoImpl) AccumulateDaily(ctx context.Context, metric *model.StudyDailyMetric) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"study_seconds": gorm.Expr("study_seconds + VALUES(study_seconds)"),
			"messages_sent": gorm.Expr("messages_sent + VALUES(messages_sent)"),
			"challenges":    gorm.Expr("challenges + VALUES(challenges)"),
		}),
	}).Create(metric).Error
}

func (s *studyMetricRepoImpl) ListRange(ctx context.Context, userID uint64, from, to time.Time) ([]*model.StudyDailyMetric, error) {
	metrics := make([]*model.StudyDailyMetric, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND metric_date >= ? AND metric_date <= ?", userID, from, to).
		Order("metric_date ASC").
		Find(&metrics).Error
	return metrics, err
}
