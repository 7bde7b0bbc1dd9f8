package wire

import (
	"StudyHub/internal/api"
	"StudyHub/internal/api/config"
	"StudyHub/internal/api/handler"
	"StudyHub/internal/job"
	"StudyHub/internal/pkg/cron"
	"StudyHub/internal/pkg/es"
	"StudyHub/internal/pkg/kafka"
	"StudyHub/internal/pkg/mongo"
	"StudyHub/internal/pkg/push"
	"StudyHub/internal/repository"
	"StudyHub/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	streakRepo := repository.NewStreakRepo(db)
	achievementRepo := repository.NewAchievementRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	goalRepo := repository.NewGoalRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	challengeRepo := repository.NewChallengeRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	metricRepo := repository.NewStudyMetricRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	chatRepo := mongo.NewChatMessageRepo(mongoDB)
	courseESRepo := es.NewCourseRepo(es.Client)
	pushClient := push.NewClient()

	userService := service.NewUserService(userRepo)
	notificationService := service.NewNotificationService(notificationRepo, pushClient)
	statsService := service.NewStatsService(userRepo, streakRepo, challengeRepo, groupRepo, achievementRepo, metricRepo, chatRepo)
	achievementService := service.NewAchievementService(achievementRepo, statsService, notificationService)
	streakService := service.NewStreakService(streakRepo, achievementService, statsService)
	groupService := service.NewGroupService(groupRepo, userService)
	chatService := service.NewChatService(chatRepo, groupRepo, userService)
	sessionService := service.NewSessionService(sessionRepo, userRepo, groupRepo, streakService)
	courseService := service.NewCourseService(courseRepo, progressRepo, courseESRepo)
	goalService := service.NewGoalService(goalRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	challengeService := service.NewChallengeService(challengeRepo, achievementService, statsService)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		StreakHandler:       handler.NewStreakHandler(streakService),
		AchievementHandler:  handler.NewAchievementHandler(achievementService),
		GroupHandler:        handler.NewGroupHandler(groupService),
		ChatHandler:         handler.NewChatHandler(chatService),
		WsHandler:           handler.NewWsHandler(chatService, groupService),
		SessionHandler:      handler.NewSessionHandler(sessionService),
		CourseHandler:       handler.NewCourseHandler(courseService),
		PlannerHandler:      handler.NewPlannerHandler(goalService, scheduleService),
		ChallengeHandler:    handler.NewChallengeHandler(challengeService),
		StatsHandler:        handler.NewStatsHandler(statsService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, metricRepo)
	if err != nil {
		return nil, err
	}

	streakReminderJob := job.NewStreakReminderJob(streakRepo, notificationService)
	courseReindexJob := job.NewCourseReindexJob(courseService)
	cronMgr := cron.NewCronManager(streakReminderJob, courseReindexJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
