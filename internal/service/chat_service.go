package service

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/mongo"
	"StudyHub/internal/pkg/redis"
	"StudyHub/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ChatService 小组群聊：写扩散走 Redis 频道，历史存 Mongo
type ChatService interface {
	SendMessage(ctx context.Context, userID, groupID uint64, req *dto.SendChatMessageReq) error
	GetHistory(ctx context.Context, userID, groupID uint64) ([]*dto.ChatMessageDTO, error)
}

type chatServiceImpl struct {
	chatRepo    mongo.ChatMessageRepo
	groupRepo   repository.GroupRepo
	userService UserService
}

func NewChatService(chatRepo mongo.ChatMessageRepo, groupRepo repository.GroupRepo, userService UserService) ChatService {
	return &chatServiceImpl{
		chatRepo:    chatRepo,
		groupRepo:   groupRepo,
		userService: userService,
	}
}

// SendMessage 发后即忘：入库 + 发布，不给发送方本地回显
// 发送方和其他成员一样通过订阅频道拿到这条消息
func (s *chatServiceImpl) SendMessage(ctx context.Context, userID, groupID uint64, req *dto.SendChatMessageReq) error {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return ErrMessageEmpty
	}

	isMember, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotGroupMember
	}

	msg := &mongo.ChatMessage{
		GroupID:   groupID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.chatRepo.SaveMessage(ctx, msg); err != nil {
		return err
	}

	if err := s.publishMessage(ctx, msg); err != nil {
		// 消息已入库，订阅方下次全量加载能补上，发布失败只记日志
		log.WarnContext(ctx, "SendMessage publish failed", "group_id", groupID, "msg_id", msg.ID, "err", err)
	}
	return nil
}

// GetHistory 全量历史，按 (created_at, id) 升序，附带昵称
func (s *chatServiceImpl) GetHistory(ctx context.Context, userID, groupID uint64) ([]*dto.ChatMessageDTO, error) {
	isMember, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotGroupMember
	}

	messages, err := s.chatRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	// 去重后的发送者集合一次性解析昵称
	senderSet := make(map[uint64]struct{}, 8)
	for _, m := range messages {
		senderSet[m.UserID] = struct{}{}
	}
	senderIDs := make([]uint64, 0, len(senderSet))
	for id := range senderSet {
		senderIDs = append(senderIDs, id)
	}
	simpleUsers, err := s.userService.GetSimpleUsers(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		item := s.toChatMessageDTO(m)
		if u, ok := simpleUsers[m.UserID]; ok {
			item.Nickname = u.Nickname
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *chatServiceImpl) publishMessage(ctx context.Context, msg *mongo.ChatMessage) error {
	data, err := json.Marshal(s.toChatMessageDTO(msg))
	if err != nil {
		return err
	}
	channel := consts.ChatGroupKey + strconv.FormatUint(msg.GroupID, 10)
	return redis.Publish(ctx, channel, data)
}

func (s *chatServiceImpl) toChatMessageDTO(m *mongo.ChatMessage) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		ID:        m.ID,
		GroupID:   m.GroupID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
