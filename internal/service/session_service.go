package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/repository"
	"context"
	"time"
)

// SessionService 学习会话：计时的开始与结算
type SessionService interface {
	StartSession(ctx context.Context, userID uint64, req *dto.StartSessionReq) (*dto.SessionDTO, error)
	EndSession(ctx context.Context, userID uint64, req *dto.EndSessionReq) (*dto.EndSessionResp, error)
	ListSessions(ctx context.Context, userID uint64, limit int) ([]*dto.SessionDTO, error)
}

type sessionServiceImpl struct {
	sessionRepo   repository.SessionRepo
	userRepo      repository.UserRepo
	groupRepo     repository.GroupRepo
	streakService StreakService
}

func NewSessionService(
	sessionRepo repository.SessionRepo,
	userRepo repository.UserRepo,
	groupRepo repository.GroupRepo,
	streakService StreakService,
) SessionService {
	return &sessionServiceImpl{
		sessionRepo:   sessionRepo,
		userRepo:      userRepo,
		groupRepo:     groupRepo,
		streakService: streakService,
	}
}

// StartSession 开始会话，组内学习需先是成员
// 已有未结束的会话时直接返回它，前端重复点击不产生多个计时
func (s *sessionServiceImpl) StartSession(ctx context.Context, userID uint64, req *dto.StartSessionReq) (*dto.SessionDTO, error) {
	if req.GroupID != nil {
		isMember, err := s.groupRepo.IsMember(ctx, *req.GroupID, userID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, ErrNotGroupMember
		}
	}

	active, err := s.sessionRepo.GetActiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return s.toSessionDTO(active), nil
	}

	session := &model.StudySession{
		UserID:    userID,
		GroupID:   req.GroupID,
		StartedAt: time.Now(),
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return s.toSessionDTO(session), nil
}

// EndSession 结算会话：负时长在任何落库前拒绝
// 时长计入个人总时长与组内时长，随后驱动连续学习记录
func (s *sessionServiceImpl) EndSession(ctx context.Context, userID uint64, req *dto.EndSessionReq) (*dto.EndSessionResp, error) {
	if req.DurationSeconds < 0 {
		return nil, ErrDurationNegative
	}

	session, err := s.sessionRepo.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if session.EndedAt != nil {
		return nil, ErrSessionAlreadyEnded
	}

	now := time.Now()
	session.EndedAt = &now
	session.DurationSeconds = req.DurationSeconds
	if err := s.sessionRepo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	if req.DurationSeconds > 0 {
		if err := s.userRepo.AddStudyTime(ctx, userID, req.DurationSeconds); err != nil {
			return nil, err
		}
		if session.GroupID != nil {
			if err := s.groupRepo.AddMemberStudyTime(ctx, *session.GroupID, userID, req.DurationSeconds); err != nil {
				return nil, err
			}
		}
	}

	streakResp, err := s.streakService.RecordStudyActivity(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &dto.EndSessionResp{
		Session: s.toSessionDTO(session),
		Streak:  streakResp,
	}, nil
}

func (s *sessionServiceImpl) ListSessions(ctx context.Context, userID uint64, limit int) ([]*dto.SessionDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	sessions, err := s.sessionRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, s.toSessionDTO(session))
	}
	return result, nil
}

func (s *sessionServiceImpl) toSessionDTO(session *model.StudySession) *dto.SessionDTO {
	return &dto.SessionDTO{
		ID:              session.ID,
		GroupID:         session.GroupID,
		StartedAt:       session.StartedAt,
		EndedAt:         session.EndedAt,
		DurationSeconds: session.DurationSeconds,
	}
}
