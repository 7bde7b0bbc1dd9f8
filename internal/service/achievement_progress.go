package service

import (
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/consts"
)

// StatsSnapshot 进度计算所需的用户统计切面
type StatsSnapshot struct {
	TotalStudySeconds   int64
	CurrentStreak       int
	ChallengesCompleted int64
	GroupsJoined        int64
	MessagesSent        int64
}

// Progress 计算单个成就的完成度百分比，范围 [0, 100]
// requirement_value <= 0 的定义视为已满足，直接 100
// sessions 类型暂无对应统计来源，恒为 0
func Progress(def *model.Achievement, stats *StatsSnapshot) float64 {
	if def.RequirementValue <= 0 {
		return 100
	}

	var current float64
	switch def.RequirementType {
	case consts.RequirementTime:
		// 需求值单位为小时
		current = float64(stats.TotalStudySeconds) / 3600
	case consts.RequirementStreak:
		current = float64(stats.CurrentStreak)
	case consts.RequirementChallenges:
		current = float64(stats.ChallengesCompleted)
	case consts.RequirementGroups:
		current = float64(stats.GroupsJoined)
	case consts.RequirementMessages:
		current = float64(stats.MessagesSent)
	case consts.RequirementSessions:
		current = 0
	default:
		current = 0
	}

	percent := current / def.RequirementValue * 100
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}
