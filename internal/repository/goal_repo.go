package repository

import (
	"StudyHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepo interface {
	GetGoal(ctx context.Context, userID uint64) (*model.StudyGoal, error)
	UpsertGoal(ctx context.Context, goal *model.StudyGoal) error
}

type goalRepoImpl struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) GoalRepo {
	return &goalRepoImpl{db: db}
}

func (s *goalRepoImpl) GetGoal(ctx context.Context, userID uint64) (*model.StudyGoal, error) {
	var goal model.StudyGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (s *goalRepoImpl) UpsertGoal(ctx context.Context, goal *model.StudyGoal) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"daily_goal_seconds", "weekly_goal_seconds", "updated_at"}),
	}).Create(goal).Error
}
