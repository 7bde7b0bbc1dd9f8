package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupSvc service.GroupService
}

func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

func (s *GroupHandler) CreateGroup(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CreateGroupReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	group, err := s.groupSvc.CreateGroup(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) JoinGroup(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.JoinGroupReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	group, err := s.groupSvc.JoinGroup(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) ListMyGroups(c *gin.Context) {
	userID := c.GetUint64("user_id")
	groups, err := s.groupSvc.ListMyGroups(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *GroupHandler) GetGroup(c *gin.Context) {
	userID := c.GetUint64("user_id")
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	group, err := s.groupSvc.GetGroup(c.Request.Context(), userID, groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) ListMembers(c *gin.Context) {
	userID := c.GetUint64("user_id")
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	members, err := s.groupSvc.ListMembers(c.Request.Context(), userID, groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}
