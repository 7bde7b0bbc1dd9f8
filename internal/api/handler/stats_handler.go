package handler

import (
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

func (s *StatsHandler) GetUserStats(c *gin.Context) {
	userID := c.GetUint64("user_id")
	stats, err := s.statsSvc.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *StatsHandler) GetMetrics7Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	metrics, err := s.statsSvc.DailyMetrics(c.Request.Context(), userID, 7)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

func (s *StatsHandler) GetMetrics30Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	metrics, err := s.statsSvc.DailyMetrics(c.Request.Context(), userID, 30)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}
