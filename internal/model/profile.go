package model

import "time"

// Profile 用户资料，total_study_time 单位为秒
type Profile struct {
	UserID         uint64 `gorm:"primaryKey"`
	Nickname       string `gorm:"type:varchar(50);not null"`
	AvatarURL      string `gorm:"type:varchar(512);column:avatar_url;default:'default_avatar.png'"`
	TotalStudyTime int64  `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
