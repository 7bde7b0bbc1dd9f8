package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionSvc service.SessionService
}

func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

func (s *SessionHandler) StartSession(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.StartSessionReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	session, err := s.sessionSvc.StartSession(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

func (s *SessionHandler) EndSession(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.EndSessionReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	resp, err := s.sessionSvc.EndSession(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (s *SessionHandler) ListSessions(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	sessions, err := s.sessionSvc.ListSessions(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sessions)
}
