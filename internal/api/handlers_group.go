package api

import "StudyHub/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	StreakHandler       *handler.StreakHandler
	AchievementHandler  *handler.AchievementHandler
	GroupHandler        *handler.GroupHandler
	ChatHandler         *handler.ChatHandler
	WsHandler           *handler.WsHandler
	SessionHandler      *handler.SessionHandler
	CourseHandler       *handler.CourseHandler
	PlannerHandler      *handler.PlannerHandler
	ChallengeHandler    *handler.ChallengeHandler
	StatsHandler        *handler.StatsHandler
	NotificationHandler *handler.NotificationHandler
}
