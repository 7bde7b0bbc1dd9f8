package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/mongo"
	"StudyHub/internal/pkg/redis"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// StatsService 用户统计聚合
type StatsService interface {
	GetUserStats(ctx context.Context, userID uint64) (*dto.UserStatsDTO, error)
	Snapshot(ctx context.Context, userID uint64) (*StatsSnapshot, error)
	DailyMetrics(ctx context.Context, userID uint64, days int) ([]*dto.DailyMetricDTO, error)
	InvalidateCache(ctx context.Context, userID uint64)
}

type statsServiceImpl struct {
	userRepo        repository.UserRepo
	streakRepo      repository.StreakRepo
	challengeRepo   repository.ChallengeRepo
	groupRepo       repository.GroupRepo
	achievementRepo repository.AchievementRepo
	metricRepo      repository.StudyMetricRepo
	chatRepo        mongo.ChatMessageRepo
}

func NewStatsService(
	userRepo repository.UserRepo,
	streakRepo repository.StreakRepo,
	challengeRepo repository.ChallengeRepo,
	groupRepo repository.GroupRepo,
	achievementRepo repository.AchievementRepo,
	metricRepo repository.StudyMetricRepo,
	chatRepo mongo.ChatMessageRepo,
) StatsService {
	return &statsServiceImpl{
		userRepo:        userRepo,
		streakRepo:      streakRepo,
		challengeRepo:   challengeRepo,
		groupRepo:       groupRepo,
		achievementRepo: achievementRepo,
		metricRepo:      metricRepo,
		chatRepo:        chatRepo,
	}
}

// GetUserStats 聚合多个存储的统计视图，短缓存扛读
func (s *statsServiceImpl) GetUserStats(ctx context.Context, userID uint64) (*dto.UserStatsDTO, error) {
	key := consts.UserStatsKey + strconv.FormatUint(userID, 10)
	if value, err := redis.GetValue(ctx, key); err == nil && value != "" {
		var cached dto.UserStatsDTO
		if json.Unmarshal([]byte(value), &cached) == nil {
			return &cached, nil
		}
	}

	snapshot, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.streakRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalXP, err := s.achievementRepo.SumXP(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &dto.UserStatsDTO{
		TotalStudyTime:      snapshot.TotalStudySeconds,
		CurrentStreak:       snapshot.CurrentStreak,
		ChallengesCompleted: snapshot.ChallengesCompleted,
		GroupsJoined:        snapshot.GroupsJoined,
		MessagesSent:        snapshot.MessagesSent,
		TotalXP:             totalXP,
	}
	if streak != nil {
		result.LongestStreak = streak.LongestStreak
		result.TotalStudyDays = streak.TotalStudyDays
	}

	if data, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, key, data, time.Minute)
	}
	return result, nil
}

// Snapshot 实时统计切面，成就评估必须用新鲜数据，不走缓存
func (s *statsServiceImpl) Snapshot(ctx context.Context, userID uint64) (*StatsSnapshot, error) {
	snapshot := &StatsSnapshot{}

	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		snapshot.TotalStudySeconds = profile.TotalStudyTime
	}

	streak, err := s.streakRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	if streak != nil {
		snapshot.CurrentStreak = streak.CurrentStreak
	}

	if snapshot.ChallengesCompleted, err = s.challengeRepo.CountCompleted(ctx, userID); err != nil {
		return nil, err
	}
	if snapshot.GroupsJoined, err = s.groupRepo.CountJoined(ctx, userID); err != nil {
		return nil, err
	}
	if snapshot.MessagesSent, err = s.chatRepo.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// DailyMetrics 最近 N 天的按天指标，缺失的天不补零
func (s *statsServiceImpl) DailyMetrics(ctx context.Context, userID uint64, days int) ([]*dto.DailyMetricDTO, error) {
	if days <= 0 || days > 90 {
		days = 7
	}

	key := consts.StudyMetricsKey + strconv.FormatUint(userID, 10) + ":" + strconv.Itoa(days)
	if value, err := redis.GetValue(ctx, key); err == nil && value != "" {
		var cached []*dto.DailyMetricDTO
		if json.Unmarshal([]byte(value), &cached) == nil {
			return cached, nil
		}
	}

	to := util.Midnight(time.Now())
	from := to.AddDate(0, 0, -(days - 1))

	metrics, err := s.metricRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.DailyMetricDTO, 0, len(metrics))
	for _, m := range metrics {
		result = append(result, &dto.DailyMetricDTO{
			Date:         m.MetricDate.Format("2006-01-02"),
			StudySeconds: m.StudySeconds,
			MessagesSent: m.MessagesSent,
			Challenges:   m.Challenges,
		})
	}

	if data, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, key, data, time.Minute)
	}
	return result, nil
}

func (s *statsServiceImpl) InvalidateCache(ctx context.Context, userID uint64) {
	_ = redis.DeleteKey(ctx, consts.UserStatsKey+strconv.FormatUint(userID, 10))
}
