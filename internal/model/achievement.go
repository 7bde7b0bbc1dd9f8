package model

import "time"

// Achievement 成就定义，静态目录，只读
type Achievement struct {
	ID               uint64  `gorm:"primaryKey"`
	Name             string  `gorm:"type:varchar(100);not null"`
	Description      string  `gorm:"type:varchar(255)"`
	Icon             string  `gorm:"type:varchar(50)"`
	Category         string  `gorm:"type:varchar(20);not null"` // study / streak / challenges / social / special
	RequirementType  string  `gorm:"type:varchar(20);not null"` // time / streak / challenges / groups / messages / sessions
	RequirementValue float64 `gorm:"not null"`
	XPReward         int     `gorm:"column:xp_reward;not null;default:0"`
	CreatedAt        time.Time
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement 用户已解锁成就，(user_id, achievement_id) 唯一
type UserAchievement struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID uint64    `gorm:"not null;uniqueIndex:idx_user_achievement"`
	EarnedAt      time.Time `gorm:"not null"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
