package dto

import "time"

// SendChatMessageReq 群聊发送请求体
type SendChatMessageReq struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=2000"`
}

// ChatMessageDTO 群聊消息视图，ID 为 Mongo 生成的全局唯一标识
type ChatMessageDTO struct {
	ID        string    `json:"id"`
	GroupID   uint64    `json:"group_id"`
	UserID    uint64    `json:"user_id"`
	Nickname  string    `json:"nickname,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
