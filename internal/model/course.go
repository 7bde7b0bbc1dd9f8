package model

import "time"

// Course 课程目录
type Course struct {
	ID            uint64  `gorm:"primaryKey"`
	Title         string  `gorm:"type:varchar(200);not null"`
	Description   *string `gorm:"type:text"`
	DurationHours float64 `gorm:"not null;default:0"`
	ImageURL      *string `gorm:"type:varchar(512)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Course) TableName() string {
	return "courses"
}
