package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseSvc service.CourseService
}

func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

func (s *CourseHandler) ListCourses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	courses, err := s.courseSvc.ListCourses(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, courses)
}

func (s *CourseHandler) GetCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("course_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	course, err := s.courseSvc.GetCourse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, course)
}

func (s *CourseHandler) SearchCourses(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	from, _ := strconv.Atoi(c.DefaultQuery("from", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	courses, err := s.courseSvc.SearchCourses(c.Request.Context(), keyword, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, courses)
}

func (s *CourseHandler) UpsertTopicProgress(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.UpsertTopicProgressReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.courseSvc.UpsertTopicProgress(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CourseHandler) ListTopicProgress(c *gin.Context) {
	userID := c.GetUint64("user_id")
	records, err := s.courseSvc.ListTopicProgress(c.Request.Context(), userID, c.Query("course_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}
