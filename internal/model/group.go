package model

import "time"

// StudyGroup 学习小组
type StudyGroup struct {
	ID          uint64  `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description *string `gorm:"type:varchar(255)"`
	Code        string  `gorm:"type:varchar(10);uniqueIndex:idx_group_code"` // 加入口令
	Password    *string `gorm:"type:varchar(255)"`                           // bcrypt 哈希，可空
	CreatedBy   uint64  `gorm:"not null"`
	CreatedAt   time.Time

	Members []GroupMember `gorm:"foreignKey:GroupID;references:ID"`
}

func (StudyGroup) TableName() string {
	return "study_groups"
}

// GroupMember 小组成员，(group_id, user_id) 唯一
type GroupMember struct {
	ID               uint64    `gorm:"primaryKey"`
	GroupID          uint64    `gorm:"not null;uniqueIndex:idx_group_user"`
	UserID           uint64    `gorm:"not null;uniqueIndex:idx_group_user;index"`
	StudyTimeInGroup int64     `gorm:"not null;default:0"` // 秒
	JoinedAt         time.Time `gorm:"not null"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
