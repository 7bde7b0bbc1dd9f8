package service

import (
	"StudyHub/internal/api/dto"
)

// MessageTimeline 群聊消息时间线的纯内存归并器
// 批量历史与实时订阅两条路径的插入都收敛到 Insert 一个入口：
// 按 ID 去重，按 (createdAt, id) 保序插入，常见的按序到达走尾部追加
// 非并发安全，由单个连接协程独占
type MessageTimeline struct {
	messages []*dto.ChatMessageDTO
	seen     map[string]struct{}
}

func NewMessageTimeline() *MessageTimeline {
	return &MessageTimeline{
		messages: make([]*dto.ChatMessageDTO, 0, 64),
		seen:     make(map[string]struct{}, 64),
	}
}

// Insert 插入一条消息，返回是否真正插入（重复 ID 返回 false）
func (s *MessageTimeline) Insert(msg *dto.ChatMessageDTO) bool {
	if msg == nil || msg.ID == "" {
		return false
	}
	if _, ok := s.seen[msg.ID]; ok {
		return false
	}
	s.seen[msg.ID] = struct{}{}

	n := len(s.messages)
	if n == 0 || !s.before(msg, s.messages[n-1]) {
		s.messages = append(s.messages, msg)
		return true
	}

	// 乱序到达：从尾部回退找插入点
	idx := n
	for idx > 0 && s.before(msg, s.messages[idx-1]) {
		idx--
	}
	s.messages = append(s.messages, nil)
	copy(s.messages[idx+1:], s.messages[idx:])
	s.messages[idx] = msg
	return true
}

// InsertBatch 批量插入（历史加载），返回实际插入条数
func (s *MessageTimeline) InsertBatch(msgs []*dto.ChatMessageDTO) int {
	inserted := 0
	for _, m := range msgs {
		if s.Insert(m) {
			inserted++
		}
	}
	return inserted
}

// Messages 返回当前快照，调用方只读
func (s *MessageTimeline) Messages() []*dto.ChatMessageDTO {
	return s.messages
}

func (s *MessageTimeline) Len() int {
	return len(s.messages)
}

// before 全序比较：先按时间，再按 ID 打破平局
func (s *MessageTimeline) before(a, b *dto.ChatMessageDTO) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
