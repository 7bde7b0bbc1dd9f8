package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/repository"
	"context"
	"time"
)

// ChallengeService 编程挑战完成记录
type ChallengeService interface {
	SubmitChallenge(ctx context.Context, userID uint64, req *dto.SubmitChallengeReq) (*dto.SubmitChallengeResp, error)
	ListCompleted(ctx context.Context, userID uint64) ([]*dto.ChallengeSubmissionDTO, error)
}

type challengeServiceImpl struct {
	challengeRepo      repository.ChallengeRepo
	achievementService AchievementService
	statsService       StatsService
}

func NewChallengeService(
	challengeRepo repository.ChallengeRepo,
	achievementService AchievementService,
	statsService StatsService,
) ChallengeService {
	return &challengeServiceImpl{
		challengeRepo:      challengeRepo,
		achievementService: achievementService,
		statsService:       statsService,
	}
}

// SubmitChallenge 同一挑战重复完成是幂等操作，只有首次计入统计
func (s *challengeServiceImpl) SubmitChallenge(ctx context.Context, userID uint64, req *dto.SubmitChallengeReq) (*dto.SubmitChallengeResp, error) {
	inserted, err := s.challengeRepo.InsertSubmission(ctx, &model.ChallengeSubmission{
		UserID:      userID,
		ChallengeID: req.ChallengeID,
		Language:    req.Language,
		CompletedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.SubmitChallengeResp{FirstCompletion: inserted}
	if !inserted {
		return resp, nil
	}

	s.statsService.InvalidateCache(ctx, userID)
	newly, err := s.achievementService.CheckAndUnlock(ctx, userID)
	if err == nil {
		resp.NewlyUnlocked = newly
	}
	return resp, nil
}

func (s *challengeServiceImpl) ListCompleted(ctx context.Context, userID uint64) ([]*dto.ChallengeSubmissionDTO, error) {
	submissions, err := s.challengeRepo.ListCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ChallengeSubmissionDTO, 0, len(submissions))
	for _, sub := range submissions {
		result = append(result, &dto.ChallengeSubmissionDTO{
			ChallengeID: sub.ChallengeID,
			Language:    sub.Language,
			CompletedAt: sub.CompletedAt,
		})
	}
	return result, nil
}
