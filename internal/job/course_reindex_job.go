package job

import (
	"StudyHub/internal/pkg/logger"
	"StudyHub/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CourseReindexJob 每日全量重建课程搜索索引
type CourseReindexJob struct {
	courseSvc service.CourseService
}

func NewCourseReindexJob(courseSvc service.CourseService) *CourseReindexJob {
	return &CourseReindexJob{courseSvc: courseSvc}
}

func (s *CourseReindexJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.courseSvc.ReindexAll(ctx); err != nil {
		log.ErrorContext(ctx, "course reindex job error", "err", err)
	}
}
