package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/repository"
	"context"
)

// GoalService 每日/每周学习目标
type GoalService interface {
	GetGoal(ctx context.Context, userID uint64) (*dto.GoalDTO, error)
	UpdateGoal(ctx context.Context, userID uint64, req *dto.GoalDTO) error
}

type goalServiceImpl struct {
	goalRepo repository.GoalRepo
}

func NewGoalService(goalRepo repository.GoalRepo) GoalService {
	return &goalServiceImpl{goalRepo: goalRepo}
}

// GetGoal 无记录返回默认目标
func (s *goalServiceImpl) GetGoal(ctx context.Context, userID uint64) (*dto.GoalDTO, error) {
	goal, err := s.goalRepo.GetGoal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return &dto.GoalDTO{DailyGoalSeconds: 3600, WeeklyGoalSeconds: 18000}, nil
	}
	return &dto.GoalDTO{
		DailyGoalSeconds:  goal.DailyGoalSeconds,
		WeeklyGoalSeconds: goal.WeeklyGoalSeconds,
	}, nil
}

func (s *goalServiceImpl) UpdateGoal(ctx context.Context, userID uint64, req *dto.GoalDTO) error {
	if req.DailyGoalSeconds < 0 || req.WeeklyGoalSeconds < 0 {
		return ErrParamInvalid
	}
	return s.goalRepo.UpsertGoal(ctx, &model.StudyGoal{
		UserID:            userID,
		DailyGoalSeconds:  req.DailyGoalSeconds,
		WeeklyGoalSeconds: req.WeeklyGoalSeconds,
	})
}
