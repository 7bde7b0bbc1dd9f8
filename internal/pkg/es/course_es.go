package es

import "time"

// CourseES 写入 ES 的课程文档
type CourseES struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DurationHours float64   `json:"duration_hours"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
}
