package model

import "time"

// StudyDailyMetric 按天聚合的学习活动指标，由 Kafka 消费者写入
type StudyDailyMetric struct {
	ID           uint64    `gorm:"primaryKey"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_user_metric_date"`
	MetricDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_metric_date"`
	StudySeconds int64     `gorm:"not null;default:0"`
	MessagesSent int       `gorm:"not null;default:0"`
	Challenges   int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (StudyDailyMetric) TableName() string {
	return "study_daily_metrics"
}
