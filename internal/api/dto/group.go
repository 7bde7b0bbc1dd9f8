package dto

import "time"

// CreateGroupReq 建组请求体
type CreateGroupReq struct {
	Name        string  `json:"name" binding:"required" validate:"min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Password    *string `json:"password" validate:"omitempty,min=4,max=64"`
}

// JoinGroupReq 按口令加入请求体
type JoinGroupReq struct {
	Code     string  `json:"code" binding:"required" validate:"len=6"`
	Password *string `json:"password"`
}

// GroupDTO 小组视图
type GroupDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Code        string    `json:"code"`
	HasPassword bool      `json:"has_password"`
	CreatedBy   uint64    `json:"created_by"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupMemberDTO 成员视图，含昵称
type GroupMemberDTO struct {
	UserID           uint64    `json:"user_id"`
	Nickname         string    `json:"nickname"`
	AvatarURL        string    `json:"avatar_url"`
	StudyTimeInGroup int64     `json:"study_time_in_group"`
	JoinedAt         time.Time `json:"joined_at"`
}
