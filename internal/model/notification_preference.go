package model

import "time"

// NotificationPreference 通知偏好，每个用户一行
type NotificationPreference struct {
	UserID                   uint64 `gorm:"primaryKey"`
	PushEnabled              bool   `gorm:"type:tinyint(1);default:0"`
	PushEndpoint             string `gorm:"type:varchar(512)"`
	StreakReminderEnabled    bool   `gorm:"type:tinyint(1);default:1"`
	StudyReminderEnabled     bool   `gorm:"type:tinyint(1);default:1"`
	AchievementNotifications bool   `gorm:"type:tinyint(1);default:1"`
	ReminderTime             string `gorm:"type:varchar(8);default:'20:00:00'"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (NotificationPreference) TableName() string {
	return "notification_preferences"
}
