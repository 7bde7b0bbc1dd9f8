package model

import "time"

// StudySession 学习会话（番茄钟计时的落库结果）
type StudySession struct {
	ID              uint64     `gorm:"primaryKey"`
	UserID          uint64     `gorm:"not null;index"`
	GroupID         *uint64    `gorm:"index"`
	StartedAt       time.Time  `gorm:"not null"`
	EndedAt         *time.Time
	DurationSeconds int64      `gorm:"not null;default:0"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
