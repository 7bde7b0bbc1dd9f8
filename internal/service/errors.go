package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserBan                 = errors.New("用户已被封禁")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrGroupNotFound           = errors.New("小组不存在")
	ErrGroupCodeInvalid        = errors.New("加入口令无效")
	ErrGroupPasswordIncorrect  = errors.New("小组密码错误")
	ErrGroupAlreadyJoined      = errors.New("已是小组成员")
	ErrNotGroupMember          = errors.New("不是小组成员")
	ErrSessionNotFound         = errors.New("学习会话不存在")
	ErrSessionAlreadyEnded     = errors.New("学习会话已结束")
	ErrDurationNegative        = errors.New("学习时长不能为负")
	ErrMessageEmpty            = errors.New("消息内容不能为空")
	ErrCourseNotFound          = errors.New("课程不存在")
	ErrAchievementNotFound     = errors.New("成就不存在")
	ErrScheduleNotFound        = errors.New("预约时段不存在")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserBan:                 Unauthorized,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrGroupNotFound:           NotFound,
	ErrGroupCodeInvalid:        NotFound,
	ErrGroupPasswordIncorrect:  Unauthorized,
	ErrGroupAlreadyJoined:      Conflict,
	ErrNotGroupMember:          Unauthorized,
	ErrSessionNotFound:         NotFound,
	ErrSessionAlreadyEnded:     BadRequest,
	ErrDurationNegative:        BadRequest,
	ErrMessageEmpty:            BadRequest,
	ErrCourseNotFound:          NotFound,
	ErrAchievementNotFound:     NotFound,
	ErrScheduleNotFound:        NotFound,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
