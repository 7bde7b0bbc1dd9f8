package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PlannerHandler 学习目标与预约时段
type PlannerHandler struct {
	goalSvc     service.GoalService
	scheduleSvc service.ScheduleService
}

func NewPlannerHandler(goalSvc service.GoalService, scheduleSvc service.ScheduleService) *PlannerHandler {
	return &PlannerHandler{goalSvc: goalSvc, scheduleSvc: scheduleSvc}
}

func (s *PlannerHandler) GetGoal(c *gin.Context) {
	userID := c.GetUint64("user_id")
	goal, err := s.goalSvc.GetGoal(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goal)
}

func (s *PlannerHandler) UpdateGoal(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.GoalDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.goalSvc.UpdateGoal(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PlannerHandler) CreateSlot(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CreateScheduleReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	slot, err := s.scheduleSvc.CreateSlot(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, slot)
}

func (s *PlannerHandler) ListUpcoming(c *gin.Context) {
	userID := c.GetUint64("user_id")
	slots, err := s.scheduleSvc.ListUpcoming(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, slots)
}

func (s *PlannerHandler) DeleteSlot(c *gin.Context) {
	userID := c.GetUint64("user_id")
	slotID, err := strconv.ParseUint(c.Param("slot_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.scheduleSvc.DeleteSlot(c.Request.Context(), userID, slotID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
