package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/redis"
	"StudyHub/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

// StreakService 连续学习记录服务
// 流记录的唯一写入方：所有写都经过 RecordStudyActivity
type StreakService interface {
	GetStreak(ctx context.Context, userID uint64) (*dto.StreakDTO, error)
	RecordStudyActivity(ctx context.Context, userID uint64, now time.Time) (*dto.RecordActivityResp, error)
}

type streakServiceImpl struct {
	streakRepo         repository.StreakRepo
	achievementService AchievementService
	statsService       StatsService
}

func NewStreakService(
	streakRepo repository.StreakRepo,
	achievementService AchievementService,
	statsService StatsService,
) StreakService {
	return &streakServiceImpl{
		streakRepo:         streakRepo,
		achievementService: achievementService,
		statsService:       statsService,
	}
}

// GetStreak 无记录返回全零视图
func (s *streakServiceImpl) GetStreak(ctx context.Context, userID uint64) (*dto.StreakDTO, error) {
	record, err := s.streakRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &dto.StreakDTO{}, nil
	}
	return s.toStreakDTO(record), nil
}

// RecordStudyActivity 上报一次学习活动
// 同一天的重复上报是幂等空操作；跨天上报单次原子 upsert 落库，
// 随后用新鲜统计做一轮成就评估
func (s *streakServiceImpl) RecordStudyActivity(ctx context.Context, userID uint64, now time.Time) (*dto.RecordActivityResp, error) {
	lockKey := consts.StreakUpdateLock + strconv.FormatUint(userID, 10)
	lockValue := now.UnixNano()
	locked, err := redis.TryLock(ctx, lockKey, lockValue, 5*time.Second, 3)
	if err == nil && locked {
		defer redis.UnLock(ctx, lockKey, lockValue)
	}

	record, err := s.streakRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	prev := model.StreakRecord{UserID: userID}
	if record != nil {
		prev = *record
	}

	next, changed := ComputeNextStreak(prev, now)
	if !changed {
		return &dto.RecordActivityResp{Streak: s.toStreakDTO(&next), Updated: false}, nil
	}

	if err := s.streakRepo.UpsertStreak(ctx, &next); err != nil {
		return nil, err
	}
	s.statsService.InvalidateCache(ctx, userID)

	newly, err := s.achievementService.CheckAndUnlock(ctx, userID)
	if err != nil {
		// 成就评估失败不回滚已落库的连续记录
		log.WarnContext(ctx, "RecordStudyActivity achievement check failed", "user_id", userID, "err", err)
		newly = nil
	}

	return &dto.RecordActivityResp{
		Streak:        s.toStreakDTO(&next),
		Updated:       true,
		NewlyUnlocked: newly,
	}, nil
}

func (s *streakServiceImpl) toStreakDTO(record *model.StreakRecord) *dto.StreakDTO {
	result := &dto.StreakDTO{
		CurrentStreak:  record.CurrentStreak,
		LongestStreak:  record.LongestStreak,
		TotalStudyDays: record.TotalStudyDays,
	}
	if record.LastStudyDate != nil {
		result.LastStudyDate = record.LastStudyDate.Format("2006-01-02")
	}
	return result
}
