package dto

// NotificationPreferenceDTO 通知偏好视图及修改请求体
type NotificationPreferenceDTO struct {
	PushEnabled              bool   `json:"push_enabled"`
	PushEndpoint             string `json:"push_endpoint" validate:"omitempty,max=512"`
	StreakReminderEnabled    bool   `json:"streak_reminder_enabled"`
	StudyReminderEnabled     bool   `json:"study_reminder_enabled"`
	AchievementNotifications bool   `json:"achievement_notifications"`
	ReminderTime             string `json:"reminder_time" validate:"omitempty,datetime=15:04:05"`
}
