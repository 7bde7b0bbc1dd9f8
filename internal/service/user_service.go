package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/redis"
	"StudyHub/internal/pkg/security"
	"StudyHub/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// UserService 用户账号与资料服务接口定义
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterReq) (*dto.LoginResp, error)
	Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileReq) error
	GetSimpleUsers(ctx context.Context, userIDs []uint64) (map[uint64]*dto.SimpleUserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// Register 注册并直接签发登录态
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterReq) (*dto.LoginResp, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserUsernameExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}

	user := &model.User{Username: req.Username, Password: hashed}
	profile := &model.Profile{Nickname: nickname, AvatarURL: consts.DefaultAvatarURL}
	if err := s.userRepo.CreateUser(ctx, user, profile); err != nil {
		return nil, err
	}

	return s.buildLoginResp(user, profile)
}

// Login 校验凭据并签发 Token
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	profile, err := s.userRepo.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.buildLoginResp(user, profile)
}

// Logout 将 Token 签名写入黑名单，有效期覆盖 Token 剩余生命周期
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toUserDTO(user, profile), nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileReq) error {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}
	if req.Nickname != nil {
		profile.Nickname = *req.Nickname
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if err := s.userRepo.UpdateProfile(ctx, profile); err != nil {
		return err
	}
	// 资料变更后失效精简视图缓存
	_ = redis.DeleteKey(ctx, consts.UserSimpleKey+strconv.FormatUint(userID, 10))
	return nil
}

// GetSimpleUsers 批量昵称解析：优先走缓存，缺失的回源后补缓存
func (s *userServiceImpl) GetSimpleUsers(ctx context.Context, userIDs []uint64) (map[uint64]*dto.SimpleUserDTO, error) {
	result := make(map[uint64]*dto.SimpleUserDTO, len(userIDs))
	missing := make([]uint64, 0, len(userIDs))

	for _, id := range userIDs {
		value, err := redis.GetValue(ctx, consts.UserSimpleKey+strconv.FormatUint(id, 10))
		if err == nil && value != "" {
			var cached dto.SimpleUserDTO
			if json.Unmarshal([]byte(value), &cached) == nil {
				result[id] = &cached
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	profiles, err := s.userRepo.GetProfiles(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		item := &dto.SimpleUserDTO{UserID: p.UserID, Nickname: p.Nickname, AvatarURL: p.AvatarURL}
		result[p.UserID] = item
		if data, err := json.Marshal(item); err == nil {
			_ = redis.SetWithExpiration(ctx, consts.UserSimpleKey+strconv.FormatUint(p.UserID, 10), data, 10*time.Minute)
		}
	}
	return result, nil
}

func (s *userServiceImpl) buildLoginResp(user *model.User, profile *model.Profile) (*dto.LoginResp, error) {
	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResp{Token: token, User: s.toUserDTO(user, profile)}, nil
}

func (s *userServiceImpl) toUserDTO(user *model.User, profile *model.Profile) *dto.UserDTO {
	userDTO := &dto.UserDTO{UserID: user.ID, Username: user.Username}
	if profile != nil {
		_ = copier.Copy(userDTO, profile)
	}
	userDTO.CreatedAt = &user.CreatedAt
	return userDTO
}
