package handler

import (
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/service"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementSvc service.AchievementService
}

func NewAchievementHandler(achievementSvc service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementSvc: achievementSvc}
}

func (s *AchievementHandler) ListAchievements(c *gin.Context) {
	userID := c.GetUint64("user_id")
	resp, err := s.achievementSvc.ListAchievements(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// CheckAchievements 主动触发一轮评估，返回本次新解锁的成就
func (s *AchievementHandler) CheckAchievements(c *gin.Context) {
	userID := c.GetUint64("user_id")
	newly, err := s.achievementSvc.CheckAndUnlock(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newly)
}
