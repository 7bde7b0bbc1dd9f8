package dto

// CreateScheduleReq 预约学习时段请求体
type CreateScheduleReq struct {
	Title         string `json:"title" binding:"required" validate:"max=100"`
	ScheduledDate string `json:"scheduled_date" binding:"required" validate:"datetime=2006-01-02"`
	StartTime     string `json:"start_time" binding:"required" validate:"datetime=15:04:05"`
	EndTime       string `json:"end_time" binding:"required" validate:"datetime=15:04:05"`
}

// ScheduleDTO 预约时段视图
type ScheduleDTO struct {
	ID            uint64 `json:"id"`
	Title         string `json:"title"`
	ScheduledDate string `json:"scheduled_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}
