package api

import (
	"StudyHub/internal/api/middleware"
	"StudyHub/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.GET("/batch/simple", group.UserHandler.GetUserSimpleInfoByIds)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateProfile)
			}
		}

		streakGroup := apiGroup.Group("/streak")
		{
			streakGroup.Use(middleware.AuthMiddleware())
			{
				streakGroup.GET("", group.StreakHandler.GetStreak)
				streakGroup.POST("/activity", group.StreakHandler.RecordActivity)
			}
		}

		achievementGroup := apiGroup.Group("/achievements")
		{
			achievementGroup.Use(middleware.AuthMiddleware())
			{
				achievementGroup.GET("", group.AchievementHandler.ListAchievements)
				achievementGroup.POST("/check", group.AchievementHandler.CheckAchievements)
			}
		}

		groupGroup := apiGroup.Group("/groups")
		{
			groupGroup.Use(middleware.AuthMiddleware())
			{
				groupGroup.POST("", group.GroupHandler.CreateGroup)
				groupGroup.POST("/join", group.GroupHandler.JoinGroup)
				groupGroup.GET("", group.GroupHandler.ListMyGroups)
				groupGroup.GET("/:group_id", group.GroupHandler.GetGroup)
				groupGroup.GET("/:group_id/members", group.GroupHandler.ListMembers)
				groupGroup.POST("/:group_id/messages", group.ChatHandler.SendMessage)
				groupGroup.GET("/:group_id/messages", group.ChatHandler.GetHistory)
			}
		}

		// WS 端点自行鉴权（token 走 query）
		apiGroup.GET("/ws/groups/:group_id", group.WsHandler.Connect)

		sessionGroup := apiGroup.Group("/sessions")
		{
			sessionGroup.Use(middleware.AuthMiddleware())
			{
				sessionGroup.POST("/start", group.SessionHandler.StartSession)
				sessionGroup.POST("/end", group.SessionHandler.EndSession)
				sessionGroup.GET("", group.SessionHandler.ListSessions)
			}
		}

		courseGroup := apiGroup.Group("/courses")
		{
			courseGroup.GET("", group.CourseHandler.ListCourses)
			courseGroup.GET("/search", group.CourseHandler.SearchCourses)
			courseGroup.GET("/:course_id", group.CourseHandler.GetCourse)

			authGroup := courseGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/progress", group.CourseHandler.UpsertTopicProgress)
				authGroup.GET("/progress", group.CourseHandler.ListTopicProgress)
			}
		}

		plannerGroup := apiGroup.Group("/planner")
		{
			plannerGroup.Use(middleware.AuthMiddleware())
			{
				plannerGroup.GET("/goal", group.PlannerHandler.GetGoal)
				plannerGroup.PUT("/goal", group.PlannerHandler.UpdateGoal)
				plannerGroup.POST("/schedule", group.PlannerHandler.CreateSlot)
				plannerGroup.GET("/schedule", group.PlannerHandler.ListUpcoming)
				plannerGroup.DELETE("/schedule/:slot_id", group.PlannerHandler.DeleteSlot)
			}
		}

		challengeGroup := apiGroup.Group("/challenges")
		{
			challengeGroup.Use(middleware.AuthMiddleware())
			{
				challengeGroup.POST("/submit", group.ChallengeHandler.SubmitChallenge)
				challengeGroup.GET("/completed", group.ChallengeHandler.ListCompleted)
			}
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.Use(middleware.AuthMiddleware())
			{
				statsGroup.GET("", group.StatsHandler.GetUserStats)
				statsGroup.GET("/daily/7d", group.StatsHandler.GetMetrics7Days)
				statsGroup.GET("/daily/30d", group.StatsHandler.GetMetrics30Days)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		{
			notificationGroup.Use(middleware.AuthMiddleware())
			{
				notificationGroup.GET("/preference", group.NotificationHandler.GetPreference)
				notificationGroup.PUT("/preference", group.NotificationHandler.UpdatePreference)
			}
		}
	}

	return r
}
