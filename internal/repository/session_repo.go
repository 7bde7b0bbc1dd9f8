package repository

import (
	"StudyHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SessionRepo interface {
	CreateSession(ctx context.Context, session *model.StudySession) error
	GetSession(ctx context.Context, id uint64) (*model.StudySession, error)
	UpdateSession(ctx context.Context, session *model.StudySession) error
	ListByUser(ctx context.Context, userID uint64, limit int) ([]*model.StudySession, error)
	GetActiveSession(ctx context.Context, userID uint64) (*model.StudySession, error)
}

type sessionRepoImpl struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &sessionRepoImpl{db: db}
}

func (s *sessionRepoImpl) CreateSession(ctx context.Context, session *model.StudySession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *sessionRepoImpl) GetSession(ctx context.Context, id uint64) (*model.StudySession, error) {
	var session model.StudySession
	err := s.db.WithContext(ctx).First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *sessionRepoImpl) UpdateSession(ctx context.Context, session *model.StudySession) error {
	return s.db.WithContext(ctx).Save(session).Error
}

func (s *sessionRepoImpl) ListByUser(ctx context.Context, userID uint64, limit int) ([]*model.StudySession, error) {
	sessions := make([]*model.StudySession, 0, limit)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// GetActiveSession 查找尚未结束的会话
func (s *sessionRepoImpl) GetActiveSession(ctx context.Context, userID uint64) (*model.StudySession, error) {
	var session model.StudySession
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND ended_at IS NULL", userID).
		Order("started_at DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}
