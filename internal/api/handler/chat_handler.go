package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatSvc service.ChatService
}

func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// SendMessage 发后即忘：HTTP 只确认接收，不回显消息体
// 消息由订阅频道推回，发送方与其他成员同路径收到
func (s *ChatHandler) SendMessage(c *gin.Context) {
	userID := c.GetUint64("user_id")
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.SendChatMessageReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.chatSvc.SendMessage(c.Request.Context(), userID, groupID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ChatHandler) GetHistory(c *gin.Context) {
	userID := c.GetUint64("user_id")
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	messages, err := s.chatSvc.GetHistory(c.Request.Context(), userID, groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}
