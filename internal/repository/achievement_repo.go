package repository

import (
	"StudyHub/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepo interface {
	ListDefinitions(ctx context.Context) ([]*model.Achievement, error)
	ListUnlocked(ctx context.Context, userID uint64) ([]*model.UserAchievement, error)
	InsertUnlocked(ctx context.Context, userID, achievementID uint64) (bool, error)
	SumXP(ctx context.Context, userID uint64) (int64, error)
}

type achievementRepoImpl struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) AchievementRepo {
	return &achievementRepoImpl{db: db}
}

// ListDefinitions 成就目录，按 requirement_value 升序
func (s *achievementRepoImpl) ListDefinitions(ctx context.Context) ([]*model.Achievement, error) {
	definitions := make([]*model.Achievement, 0)
	err := s.db.WithContext(ctx).
		Order("requirement_value ASC").
		Find(&definitions).Error
	return definitions, err
}

func (s *achievementRepoImpl) ListUnlocked(ctx context.Context, userID uint64) ([]*model.UserAchievement, error) {
	unlocked := make([]*model.UserAchievement, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&unlocked).Error
	return unlocked, err
}

// InsertUnlocked 幂等解锁：唯一索引冲突视为"已解锁"而非错误
// 返回 true 表示本次为首次解锁
func (s *achievementRepoImpl) InsertUnlocked(ctx context.Context, userID, achievementID uint64) (bool, error) {
	record := &model.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now(),
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SumXP 按需重算累计 XP，目录量级为几十条，不做缓存
func (s *achievementRepoImpl) SumXP(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Table("user_achievements ua").
		Joins("JOIN achievements a ON ua.achievement_id = a.id").
		Where("ua.user_id = ?", userID).
		Select("COALESCE(SUM(a.xp_reward), 0)").
		Scan(&total).Error
	return total, err
}
