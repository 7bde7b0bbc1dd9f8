package repository

import (
	"StudyHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CourseRepo interface {
	ListCourses(ctx context.Context, page, pageSize int) ([]*model.Course, error)
	GetCourse(ctx context.Context, id uint64) (*model.Course, error)
	AllCourses(ctx context.Context) ([]*model.Course, error)
}

type courseRepoImpl struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepo {
	return &courseRepoImpl{db: db}
}

func (s *courseRepoImpl) ListCourses(ctx context.Context, page, pageSize int) ([]*model.Course, error) {
	courses := make([]*model.Course, 0, pageSize)
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&courses).Error
	return courses, err
}

func (s *courseRepoImpl) GetCourse(ctx context.Context, id uint64) (*model.Course, error) {
	var course model.Course
	err := s.db.WithContext(ctx).First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// AllCourses 全量拉取，供定时重建搜索索引
func (s *courseRepoImpl) AllCourses(ctx context.Context) ([]*model.Course, error) {
	courses := make([]*model.Course, 0)
	err := s.db.WithContext(ctx).Find(&courses).Error
	return courses, err
}
