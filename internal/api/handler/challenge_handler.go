package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/service"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challengeSvc service.ChallengeService
}

func NewChallengeHandler(challengeSvc service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeSvc: challengeSvc}
}

func (s *ChallengeHandler) SubmitChallenge(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.SubmitChallengeReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	resp, err := s.challengeSvc.SubmitChallenge(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (s *ChallengeHandler) ListCompleted(c *gin.Context) {
	userID := c.GetUint64("user_id")
	submissions, err := s.challengeSvc.ListCompleted(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, submissions)
}
