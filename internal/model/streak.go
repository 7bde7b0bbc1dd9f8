package model

import "time"

// StreakRecord 用户连续学习记录，每个用户一行
// 不变量: longest_streak >= current_streak, total_study_days >= current_streak
type StreakRecord struct {
	UserID         uint64     `gorm:"primaryKey"`
	CurrentStreak  int        `gorm:"not null;default:0"`
	LongestStreak  int        `gorm:"not null;default:0"`
	LastStudyDate  *time.Time `gorm:"type:date"` // 仅日期，无时间部分
	TotalStudyDays int        `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (StreakRecord) TableName() string {
	return "user_streaks"
}
