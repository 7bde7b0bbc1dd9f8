package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/security"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/repository"
	"context"
	"time"
)

// GroupService 学习小组服务
type GroupService interface {
	CreateGroup(ctx context.Context, userID uint64, req *dto.CreateGroupReq) (*dto.GroupDTO, error)
	JoinGroup(ctx context.Context, userID uint64, req *dto.JoinGroupReq) (*dto.GroupDTO, error)
	ListMyGroups(ctx context.Context, userID uint64) ([]*dto.GroupDTO, error)
	GetGroup(ctx context.Context, userID, groupID uint64) (*dto.GroupDTO, error)
	ListMembers(ctx context.Context, userID, groupID uint64) ([]*dto.GroupMemberDTO, error)
	IsMember(ctx context.Context, groupID, userID uint64) (bool, error)
}

type groupServiceImpl struct {
	groupRepo   repository.GroupRepo
	userService UserService
}

func NewGroupService(groupRepo repository.GroupRepo, userService UserService) GroupService {
	return &groupServiceImpl{groupRepo: groupRepo, userService: userService}
}

// CreateGroup 建组：生成 6 位口令，口令撞库时重试
func (s *groupServiceImpl) CreateGroup(ctx context.Context, userID uint64, req *dto.CreateGroupReq) (*dto.GroupDTO, error) {
	group := &model.StudyGroup{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		group.Password = &hashed
	}

	for attempt := 0; attempt < 5; attempt++ {
		group.Code = util.GenerateGroupCode(consts.GroupCodeLength)
		existing, err := s.groupRepo.GetGroupByCode(ctx, group.Code)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			break
		}
		if attempt == 4 {
			return nil, UnExpectedError
		}
	}

	if err := s.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return s.toGroupDTO(group, 1), nil
}

// JoinGroup 按口令加入：校验口令与密码，重复加入返回业务冲突
func (s *groupServiceImpl) JoinGroup(ctx context.Context, userID uint64, req *dto.JoinGroupReq) (*dto.GroupDTO, error) {
	group, err := s.groupRepo.GetGroupByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupCodeInvalid
	}

	if group.Password != nil {
		if req.Password == nil {
			return nil, ErrGroupPasswordIncorrect
		}
		if err := security.CheckPasswordHash(*req.Password, *group.Password); err != nil {
			return nil, ErrGroupPasswordIncorrect
		}
	}

	inserted, err := s.groupRepo.AddMember(ctx, &model.GroupMember{
		GroupID:  group.ID,
		UserID:   userID,
		JoinedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrGroupAlreadyJoined
	}

	members, err := s.groupRepo.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return s.toGroupDTO(group, len(members)), nil
}

func (s *groupServiceImpl) ListMyGroups(ctx context.Context, userID uint64) ([]*dto.GroupDTO, error) {
	groups, err := s.groupRepo.ListGroupsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.GroupDTO, 0, len(groups))
	for _, group := range groups {
		members, err := s.groupRepo.ListMembers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, s.toGroupDTO(group, len(members)))
	}
	return result, nil
}

func (s *groupServiceImpl) GetGroup(ctx context.Context, userID, groupID uint64) (*dto.GroupDTO, error) {
	isMember, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotGroupMember
	}
	group, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.toGroupDTO(group, len(members)), nil
}

// ListMembers 成员列表附带昵称头像，昵称批量解析
func (s *groupServiceImpl) ListMembers(ctx context.Context, userID, groupID uint64) ([]*dto.GroupMemberDTO, error) {
	isMember, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotGroupMember
	}

	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	simpleUsers, err := s.userService.GetSimpleUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupMemberDTO, 0, len(members))
	for _, m := range members {
		item := &dto.GroupMemberDTO{
			UserID:           m.UserID,
			StudyTimeInGroup: m.StudyTimeInGroup,
			JoinedAt:         m.JoinedAt,
		}
		if u, ok := simpleUsers[m.UserID]; ok {
			item.Nickname = u.Nickname
			item.AvatarURL = u.AvatarURL
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *groupServiceImpl) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	return s.groupRepo.IsMember(ctx, groupID, userID)
}

func (s *groupServiceImpl) toGroupDTO(group *model.StudyGroup, memberCount int) *dto.GroupDTO {
	return &dto.GroupDTO{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		Code:        group.Code,
		HasPassword: group.Password != nil,
		CreatedBy:   group.CreatedBy,
		MemberCount: memberCount,
		CreatedAt:   group.CreatedAt,
	}
}
