package dto

// GoalDTO 学习目标视图及修改请求体
type GoalDTO struct {
	DailyGoalSeconds  int64 `json:"daily_goal_seconds" validate:"min=0"`
	WeeklyGoalSeconds int64 `json:"weekly_goal_seconds" validate:"min=0"`
}
