package dto

import "time"

// RegisterReq 注册请求体
type RegisterReq struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
	Nickname string `json:"nickname" validate:"omitempty,max=50"`
}

// LoginReq 登录请求体
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResp 登录响应
type LoginResp struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// UserDTO 用户资料响应
type UserDTO struct {
	UserID         uint64     `json:"user_id"`
	Username       string     `json:"username"`
	Nickname       string     `json:"nickname"`
	AvatarURL      string     `json:"avatar_url"`
	TotalStudyTime int64      `json:"total_study_time"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// UpdateProfileReq 修改资料请求体
type UpdateProfileReq struct {
	Nickname  *string `json:"nickname" validate:"omitempty,max=50"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=512"`
}

// SimpleUserDTO 批量昵称解析用的精简视图
type SimpleUserDTO struct {
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}
