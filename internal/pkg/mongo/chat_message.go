package mongo

import (
	"time"
)

// ChatMessage 小组聊天消息，入库后不可变
// 排序键为 (created_at, _id)，_id 同时作为去重键
type ChatMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	GroupID   uint64    `bson:"group_id" json:"group_id"`
	UserID    uint64    `bson:"user_id" json:"user_id"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
