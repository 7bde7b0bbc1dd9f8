package dto

import "time"

// AchievementDTO 成就视图：目录定义 + 个人进度
type AchievementDTO struct {
	ID               uint64     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Icon             string     `json:"icon"`
	Category         string     `json:"category"`
	RequirementType  string     `json:"requirement_type"`
	RequirementValue float64    `json:"requirement_value"`
	XPReward         int        `json:"xp_reward"`
	Progress         float64    `json:"progress"`
	Unlocked         bool       `json:"unlocked"`
	EarnedAt         *time.Time `json:"earned_at,omitempty"`
}

// AchievementListResp 成就总览
type AchievementListResp struct {
	Achievements []*AchievementDTO `json:"achievements"`
	TotalXP      int64             `json:"total_xp"`
	UnlockedNum  int               `json:"unlocked_num"`
}
