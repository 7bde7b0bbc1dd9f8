package dto

import "time"

// StartSessionReq 开始学习会话请求体
type StartSessionReq struct {
	GroupID *uint64 `json:"group_id"`
}

// EndSessionReq 结束学习会话请求体
type EndSessionReq struct {
	SessionID       uint64 `json:"session_id" binding:"required"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// SessionDTO 学习会话视图
type SessionDTO struct {
	ID              uint64     `json:"id"`
	GroupID         *uint64    `json:"group_id,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds int64      `json:"duration_seconds"`
}

// EndSessionResp 结束会话响应，附带连续学习结果
type EndSessionResp struct {
	Session *SessionDTO         `json:"session"`
	Streak  *RecordActivityResp `json:"streak"`
}
