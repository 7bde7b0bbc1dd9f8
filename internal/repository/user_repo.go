package repository

import (
	"StudyHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User, profile *model.Profile) error
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetProfile(ctx context.Context, userID uint64) (*model.Profile, error)
	GetProfiles(ctx context.Context, userIDs []uint64) ([]*model.Profile, error)
	UpdateProfile(ctx context.Context, profile *model.Profile) error
	AddStudyTime(ctx context.Context, userID uint64, seconds int64) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepoImpl{db: db}
}

// CreateUser 开启事务创建用户与资料
func (s *userRepoImpl) CreateUser(ctx context.Context, user *model.User, profile *model.Profile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (s *userRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *userRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *userRepoImpl) GetProfile(ctx context.Context, userID uint64) (*model.Profile, error) {
	var profile model.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfiles 批量拉取资料（聊天视图的昵称批量解析）
func (s *userRepoImpl) GetProfiles(ctx context.Context, userIDs []uint64) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0, len(userIDs))
	err := s.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

func (s *userRepoImpl) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	return s.db.WithContext(ctx).Model(&model.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"nickname":   profile.Nickname,
			"avatar_url": profile.AvatarURL,
		}).Error
}

// AddStudyTime 累加学习总时长
func (s *userRepoImpl) AddStudyTime(ctx context.Context, userID uint64, seconds int64) error {
	return s.db.WithContext(ctx).Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Update("total_study_time", gorm.Expr("total_study_time + ?", seconds)).Error
}
