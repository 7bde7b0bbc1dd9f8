package dto

// CourseDTO 课程视图
type CourseDTO struct {
	ID            uint64  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	DurationHours float64 `json:"duration_hours"`
	ImageURL      *string `json:"image_url,omitempty"`
}

// UpsertTopicProgressReq 主题进度上报请求体
type UpsertTopicProgressReq struct {
	TopicID            string  `json:"topic_id" binding:"required" validate:"max=100"`
	TopicName          string  `json:"topic_name" binding:"required" validate:"max=200"`
	TopicType          string  `json:"topic_type" binding:"required" validate:"oneof=lesson quiz practice"`
	CourseType         string  `json:"course_type" binding:"required" validate:"max=50"`
	ProgressPercentage float64 `json:"progress_percentage" validate:"min=0,max=100"`
	TimeSpentSeconds   int64   `json:"time_spent_seconds" validate:"min=0"`
}

// TopicProgressDTO 主题进度视图
type TopicProgressDTO struct {
	TopicID            string  `json:"topic_id"`
	TopicName          string  `json:"topic_name"`
	TopicType          string  `json:"topic_type"`
	CourseType         string  `json:"course_type"`
	ProgressPercentage float64 `json:"progress_percentage"`
	TotalTimeSeconds   int64   `json:"total_time_seconds"`
}
