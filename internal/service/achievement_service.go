package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

// AchievementService 成就目录、进度与解锁
type AchievementService interface {
	ListAchievements(ctx context.Context, userID uint64) (*dto.AchievementListResp, error)
	CheckAndUnlock(ctx context.Context, userID uint64) ([]*dto.AchievementDTO, error)
}

type achievementServiceImpl struct {
	achievementRepo     repository.AchievementRepo
	statsService        StatsService
	notificationService NotificationService
}

func NewAchievementService(
	achievementRepo repository.AchievementRepo,
	statsService StatsService,
	notificationService NotificationService,
) AchievementService {
	return &achievementServiceImpl{
		achievementRepo:     achievementRepo,
		statsService:        statsService,
		notificationService: notificationService,
	}
}

// ListAchievements 全量目录 + 个人进度 + 已解锁标记
func (s *achievementServiceImpl) ListAchievements(ctx context.Context, userID uint64) (*dto.AchievementListResp, error) {
	definitions, err := s.achievementRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.achievementRepo.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.statsService.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[uint64]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementID] = ua.EarnedAt
	}

	items := make([]*dto.AchievementDTO, 0, len(definitions))
	for _, def := range definitions {
		item := &dto.AchievementDTO{}
		_ = copier.Copy(item, def)
		if earnedAt, ok := unlockedAt[def.ID]; ok {
			item.Unlocked = true
			item.Progress = 100
			item.EarnedAt = &earnedAt
		} else {
			item.Progress = Progress(def, snapshot)
		}
		items = append(items, item)
	}

	totalXP, err := s.achievementRepo.SumXP(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.AchievementListResp{
		Achievements: items,
		TotalXP:      totalXP,
		UnlockedNum:  len(unlocked),
	}, nil
}

// CheckAndUnlock 用新鲜统计评估全部定义，解锁新满足的成就
// 解锁靠唯一索引幂等，并发重复调用至多生效一次
func (s *achievementServiceImpl) CheckAndUnlock(ctx context.Context, userID uint64) ([]*dto.AchievementDTO, error) {
	definitions, err := s.achievementRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.achievementRepo.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlockedSet := make(map[uint64]struct{}, len(unlocked))
	for _, ua := range unlocked {
		unlockedSet[ua.AchievementID] = struct{}{}
	}

	snapshot, err := s.statsService.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	newly := make([]*dto.AchievementDTO, 0)
	for _, def := range definitions {
		if _, ok := unlockedSet[def.ID]; ok {
			continue
		}
		if Progress(def, snapshot) < 100 {
			continue
		}
		inserted, err := s.achievementRepo.InsertUnlocked(ctx, userID, def.ID)
		if err != nil {
			log.ErrorContext(ctx, "CheckAndUnlock insert failed", "user_id", userID, "achievement_id", def.ID, "err", err)
			continue
		}
		if !inserted {
			// 并发下已被其他请求解锁
			continue
		}
		item := &dto.AchievementDTO{}
		_ = copier.Copy(item, def)
		item.Unlocked = true
		item.Progress = 100
		newly = append(newly, item)

		s.notificationService.NotifyAchievementUnlocked(ctx, userID, def.Name)
	}

	if len(newly) > 0 {
		s.statsService.InvalidateCache(ctx, userID)
	}
	return newly, nil
}
