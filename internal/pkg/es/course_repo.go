package es

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

type CourseRepo interface {
	IndexCourse(ctx context.Context, course *CourseES, version int64) error
	DeleteCourse(ctx context.Context, id uint64) error
	SearchCourses(ctx context.Context, keyword string, from, size int) ([]*CourseES, error)
}

type CourseRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewCourseRepo(client *elasticsearch.TypedClient) CourseRepo {
	return &CourseRepoImpl{client: client}
}

// IndexCourse 以外部版本号写入，旧版本冲突直接跳过
func (s *CourseRepoImpl) IndexCourse(ctx context.Context, course *CourseES, version int64) error {
	docID := strconv.FormatUint(course.ID, 10)

	_, err := s.client.Index(CourseIndex).
		Id(docID).
		Document(course).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				log.Warn("Version conflict detected, skipping old data",
					"course_id", course.ID,
					"version", version)
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *CourseRepoImpl) DeleteCourse(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)
	_, err := s.client.Delete(CourseIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				log.Warn("Course already deleted or not found in ES", "id", id)
				return nil
			}
		}
		return err
	}
	return nil
}

// SearchCourses 标题/描述多字段检索
func (s *CourseRepoImpl) SearchCourses(ctx context.Context, keyword string, from, size int) ([]*CourseES, error) {
	res, err := s.client.Search().Index(CourseIndex).
		From(from).
		Size(size).
		Query(&types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:  keyword,
				Fields: []string{"title^2", "description"},
			},
		}).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	courses := make([]*CourseES, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var course CourseES
		if err := json.Unmarshal(hit.Source_, &course); err != nil {
			log.Warn("Failed to decode course document", "err", err)
			continue
		}
		courses = append(courses, &course)
	}
	return courses, nil
}
