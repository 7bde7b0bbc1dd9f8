package dto

import "time"

// SubmitChallengeReq 挑战完成上报请求体
type SubmitChallengeReq struct {
	ChallengeID string `json:"challenge_id" binding:"required" validate:"max=100"`
	Language    string `json:"language" validate:"omitempty,max=30"`
}

// ChallengeSubmissionDTO 已完成挑战视图
type ChallengeSubmissionDTO struct {
	ChallengeID string    `json:"challenge_id"`
	Language    string    `json:"language,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// SubmitChallengeResp 上报响应
type SubmitChallengeResp struct {
	FirstCompletion bool              `json:"first_completion"`
	NewlyUnlocked   []*AchievementDTO `json:"newly_unlocked,omitempty"`
}
