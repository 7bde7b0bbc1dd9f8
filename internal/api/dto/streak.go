package dto

// StreakDTO 连续学习视图
type StreakDTO struct {
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	LastStudyDate  string `json:"last_study_date,omitempty"` // YYYY-MM-DD
	TotalStudyDays int    `json:"total_study_days"`
}

// RecordActivityResp 活动上报响应
type RecordActivityResp struct {
	Streak        *StreakDTO        `json:"streak"`
	Updated       bool              `json:"updated"`
	NewlyUnlocked []*AchievementDTO `json:"newly_unlocked,omitempty"`
}
