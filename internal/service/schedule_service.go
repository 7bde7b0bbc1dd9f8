package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/repository"
	"context"
	"time"
)

// ScheduleService 预约学习时段
type ScheduleService interface {
	CreateSlot(ctx context.Context, userID uint64, req *dto.CreateScheduleReq) (*dto.ScheduleDTO, error)
	ListUpcoming(ctx context.Context, userID uint64) ([]*dto.ScheduleDTO, error)
	DeleteSlot(ctx context.Context, userID, slotID uint64) error
}

type scheduleServiceImpl struct {
	scheduleRepo repository.ScheduleRepo
}

func NewScheduleService(scheduleRepo repository.ScheduleRepo) ScheduleService {
	return &scheduleServiceImpl{scheduleRepo: scheduleRepo}
}

func (s *scheduleServiceImpl) CreateSlot(ctx context.Context, userID uint64, req *dto.CreateScheduleReq) (*dto.ScheduleDTO, error) {
	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if req.EndTime <= req.StartTime {
		return nil, ErrParamInvalid
	}

	slot := &model.ScheduledStudy{
		UserID:        userID,
		Title:         req.Title,
		ScheduledDate: scheduledDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}
	if err := s.scheduleRepo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}
	return s.toScheduleDTO(slot), nil
}

func (s *scheduleServiceImpl) ListUpcoming(ctx context.Context, userID uint64) ([]*dto.ScheduleDTO, error) {
	slots, err := s.scheduleRepo.ListUpcoming(ctx, userID, util.Midnight(time.Now()))
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ScheduleDTO, 0, len(slots))
	for _, slot := range slots {
		result = append(result, s.toScheduleDTO(slot))
	}
	return result, nil
}

func (s *scheduleServiceImpl) DeleteSlot(ctx context.Context, userID, slotID uint64) error {
	deleted, err := s.scheduleRepo.DeleteSlot(ctx, userID, slotID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrScheduleNotFound
	}
	return nil
}

func (s *scheduleServiceImpl) toScheduleDTO(slot *model.ScheduledStudy) *dto.ScheduleDTO {
	return &dto.ScheduleDTO{
		ID:            slot.ID,
		Title:         slot.Title,
		ScheduledDate: slot.ScheduledDate.Format("2006-01-02"),
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
	}
}
