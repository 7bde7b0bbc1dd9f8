package model

import "time"

// TopicProgress 用户在某个课程主题上的学习进度，(user_id, topic_id) 唯一
type TopicProgress struct {
	ID                 uint64     `gorm:"primaryKey"`
	UserID             uint64     `gorm:"not null;uniqueIndex:idx_user_topic"`
	TopicID            string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_topic"`
	TopicName          string     `gorm:"type:varchar(200);not null"`
	TopicType          string     `gorm:"type:varchar(20);not null"` // lesson / quiz / practice
	CourseType         string     `gorm:"type:varchar(50);not null"`
	ProgressPercentage float64    `gorm:"not null;default:0"`
	TotalTimeSeconds   int64      `gorm:"not null;default:0"`
	LastStudiedAt      *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (TopicProgress) TableName() string {
	return "user_topic_progress"
}
