package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) GetPreference(c *gin.Context) {
	userID := c.GetUint64("user_id")
	pref, err := s.notificationSvc.GetPreference(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pref)
}

func (s *NotificationHandler) UpdatePreference(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.NotificationPreferenceDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.notificationSvc.UpdatePreference(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
