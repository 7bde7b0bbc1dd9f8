package repository

import (
	"StudyHub/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeRepo interface {
	InsertSubmission(ctx context.Context, submission *model.ChallengeSubmission) (bool, error)
	CountCompleted(ctx context.Context, userID uint64) (int64, error)
	ListCompleted(ctx context.Context, userID uint64) ([]*model.ChallengeSubmission, error)
}

type challengeRepoImpl struct {
	db *gorm.DB
}

func NewChallengeRepo(db *gorm.DB) ChallengeRepo {
	return &challengeRepoImpl{db: db}
}

// InsertSubmission 同一挑战只记一次，冲突即已完成
func (s *challengeRepoImpl) InsertSubmission(ctx context.Context, submission *model.ChallengeSubmission) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoNothing: true,
	}).Create(submission)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *challengeRepoImpl) CountCompleted(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ChallengeSubmission{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *challengeRepoImpl) ListCompleted(ctx context.Context, userID uint64) ([]*model.ChallengeSubmission, error) {
	submissions := make([]*model.ChallengeSubmission, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&submissions).Error
	return submissions, err
}
