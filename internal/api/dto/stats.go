package dto

// UserStatsDTO 用户统计聚合视图
type UserStatsDTO struct {
	TotalStudyTime      int64 `json:"total_study_time"`
	CurrentStreak       int   `json:"current_streak"`
	LongestStreak       int   `json:"longest_streak"`
	TotalStudyDays      int   `json:"total_study_days"`
	ChallengesCompleted int64 `json:"challenges_completed"`
	GroupsJoined        int64 `json:"groups_joined"`
	MessagesSent        int64 `json:"messages_sent"`
	TotalXP             int64 `json:"total_xp"`
}

// DailyMetricDTO 按天的学习指标
type DailyMetricDTO struct {
	Date         string `json:"date"` // YYYY-MM-DD
	StudySeconds int64  `json:"study_seconds"`
	MessagesSent int    `json:"messages_sent"`
	Challenges   int    `json:"challenges"`
}
