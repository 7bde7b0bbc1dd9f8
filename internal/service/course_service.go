package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/es"
	"StudyHub/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

// CourseService 课程目录与主题进度
type CourseService interface {
	ListCourses(ctx context.Context, page, pageSize int) ([]*dto.CourseDTO, error)
	GetCourse(ctx context.Context, id uint64) (*dto.CourseDTO, error)
	SearchCourses(ctx context.Context, keyword string, from, size int) ([]*dto.CourseDTO, error)
	ReindexAll(ctx context.Context) error
	UpsertTopicProgress(ctx context.Context, userID uint64, req *dto.UpsertTopicProgressReq) error
	ListTopicProgress(ctx context.Context, userID uint64, courseType string) ([]*dto.TopicProgressDTO, error)
}

type courseServiceImpl struct {
	courseRepo   repository.CourseRepo
	progressRepo repository.ProgressRepo
	courseES     es.CourseRepo
}

func NewCourseService(courseRepo repository.CourseRepo, progressRepo repository.ProgressRepo, courseES es.CourseRepo) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		courseES:     courseES,
	}
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, page, pageSize int) ([]*dto.CourseDTO, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}
	courses, err := s.courseRepo.ListCourses(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		item := &dto.CourseDTO{}
		_ = copier.Copy(item, course)
		result = append(result, item)
	}
	return result, nil
}

func (s *courseServiceImpl) GetCourse(ctx context.Context, id uint64) (*dto.CourseDTO, error) {
	course, err := s.courseRepo.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	item := &dto.CourseDTO{}
	_ = copier.Copy(item, course)
	return item, nil
}

// SearchCourses 全文检索走 ES，标题权重高于简介
func (s *courseServiceImpl) SearchCourses(ctx context.Context, keyword string, from, size int) ([]*dto.CourseDTO, error) {
	if size <= 0 || size > 50 {
		size = 20
	}
	hits, err := s.courseES.SearchCourses(ctx, keyword, from, size)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CourseDTO, 0, len(hits))
	for _, hit := range hits {
		item := &dto.CourseDTO{}
		_ = copier.Copy(item, hit)
		result = append(result, item)
	}
	return result, nil
}

// ReindexAll 全量重建课程索引，以 UpdatedAt 作为外部版本防旧写覆盖
func (s *courseServiceImpl) ReindexAll(ctx context.Context) error {
	courses, err := s.courseRepo.AllCourses(ctx)
	if err != nil {
		return err
	}
	for _, course := range courses {
		doc := &es.CourseES{}
		_ = copier.Copy(doc, course)
		if err := s.courseES.IndexCourse(ctx, doc, course.UpdatedAt.UnixMilli()); err != nil {
			log.ErrorContext(ctx, "ReindexAll index failed", "course_id", course.ID, "err", err)
		}
	}
	log.InfoContext(ctx, "ReindexAll done", "total", len(courses))
	return nil
}

// UpsertTopicProgress 主题进度上报，(user_id, topic_id) 原子覆盖
func (s *courseServiceImpl) UpsertTopicProgress(ctx context.Context, userID uint64, req *dto.UpsertTopicProgressReq) error {
	now := time.Now()
	return s.progressRepo.UpsertTopicProgress(ctx, &model.TopicProgress{
		UserID:             userID,
		TopicID:            req.TopicID,
		TopicName:          req.TopicName,
		TopicType:          req.TopicType,
		CourseType:         req.CourseType,
		ProgressPercentage: req.ProgressPercentage,
		TotalTimeSeconds:   req.TimeSpentSeconds,
		LastStudiedAt:      &now,
	})
}

// ListTopicProgress courseType 非空时只返回该课程类别下的进度
func (s *courseServiceImpl) ListTopicProgress(ctx context.Context, userID uint64, courseType string) ([]*dto.TopicProgressDTO, error) {
	var records []*model.TopicProgress
	var err error
	if courseType != "" {
		records, err = s.progressRepo.ListByCourseType(ctx, userID, courseType)
	} else {
		records, err = s.progressRepo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TopicProgressDTO, 0, len(records))
	for _, record := range records {
		item := &dto.TopicProgressDTO{}
		_ = copier.Copy(item, record)
		result = append(result, item)
	}
	return result, nil
}
