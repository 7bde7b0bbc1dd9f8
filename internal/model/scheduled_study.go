package model

import "time"

// ScheduledStudy 预约的学习时段
type ScheduledStudy struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index"`
	Title         string    `gorm:"type:varchar(100);not null"`
	ScheduledDate time.Time `gorm:"type:date;not null"`
	StartTime     string    `gorm:"type:varchar(8);not null"` // HH:MM:SS
	EndTime       string    `gorm:"type:varchar(8);not null"`
	CreatedAt     time.Time
}

func (ScheduledStudy) TableName() string {
	return "scheduled_study"
}
