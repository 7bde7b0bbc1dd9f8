package handler

import (
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type StreakHandler struct {
	streakSvc service.StreakService
}

func NewStreakHandler(streakSvc service.StreakService) *StreakHandler {
	return &StreakHandler{streakSvc: streakSvc}
}

func (s *StreakHandler) GetStreak(c *gin.Context) {
	userID := c.GetUint64("user_id")
	streak, err := s.streakSvc.GetStreak(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, streak)
}

// RecordActivity 学习活动上报，同一天重复上报幂等
func (s *StreakHandler) RecordActivity(c *gin.Context) {
	userID := c.GetUint64("user_id")
	resp, err := s.streakSvc.RecordStudyActivity(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}
