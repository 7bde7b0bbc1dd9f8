package repository

import (
	"StudyHub/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepo interface {
	CreateGroup(ctx context.Context, group *model.StudyGroup) error
	GetGroupByID(ctx context.Context, id uint64) (*model.StudyGroup, error)
	GetGroupByCode(ctx context.Context, code string) (*model.StudyGroup, error)
	ListGroupsByUser(ctx context.Context, userID uint64) ([]*model.StudyGroup, error)
	IsMember(ctx context.Context, groupID, userID uint64) (bool, error)
	AddMember(ctx context.Context, member *model.GroupMember) (bool, error)
	ListMembers(ctx context.Context, groupID uint64) ([]*model.GroupMember, error)
	AddMemberStudyTime(ctx context.Context, groupID, userID uint64, seconds int64) error
	CountJoined(ctx context.Context, userID uint64) (int64, error)
}

type groupRepoImpl struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &groupRepoImpl{db: db}
}

// CreateGroup 建群并把创建者写为首个成员，同一事务
func (s *groupRepoImpl) CreateGroup(ctx context.Context, group *model.StudyGroup) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &model.GroupMember{
			GroupID:  group.ID,
			UserID:   group.CreatedBy,
			JoinedAt: time.Now(),
		}
		return tx.Create(member).Error
	})
}

func (s *groupRepoImpl) GetGroupByID(ctx context.Context, id uint64) (*model.StudyGroup, error) {
	var group model.StudyGroup
	err := s.db.WithContext(ctx).First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (s *groupRepoImpl) GetGroupByCode(ctx context.Context, code string) (*model.StudyGroup, error) {
	var group model.StudyGroup
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (s *groupRepoImpl) ListGroupsByUser(ctx context.Context, userID uint64) ([]*model.StudyGroup, error) {
	groups := make([]*model.StudyGroup, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN group_members gm ON gm.group_id = study_groups.id").
		Where("gm.user_id = ?", userID).
		Order("study_groups.created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (s *groupRepoImpl) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddMember 靠唯一索引兜底并发重复加入，冲突返回 false
func (s *groupRepoImpl) AddMember(ctx context.Context, member *model.GroupMember) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *groupRepoImpl) ListMembers(ctx context.Context, groupID uint64) ([]*model.GroupMember, error) {
	members := make([]*model.GroupMember, 0)
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (s *groupRepoImpl) AddMemberStudyTime(ctx context.Context, groupID, userID uint64, seconds int64) error {
	return s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("study_time_in_group", gorm.Expr("study_time_in_group + ?", seconds)).Error
}

func (s *groupRepoImpl) CountJoined(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
