package model

import "time"

// StudyGoal 每日/每周学习目标，每个用户一行
type StudyGoal struct {
	UserID            uint64 `gorm:"primaryKey"`
	DailyGoalSeconds  int64  `gorm:"not null;default:3600"`
	WeeklyGoalSeconds int64  `gorm:"not null;default:18000"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (StudyGoal) TableName() string {
	return "study_goals"
}
