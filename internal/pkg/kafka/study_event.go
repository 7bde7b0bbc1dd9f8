package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// StudyActivityEvent 学习活动事件，前端与其他服务写入 study-activity 主题
// type 取值见 consts.ActivitySession / ActivityMessage / ActivityChallenge
type StudyActivityEvent struct {
	UserID     uint64    `json:"user_id"`
	Type       string    `json:"type"`
	Amount     int64     `json:"amount"` // session 为秒数，其余为次数
	OccurredAt time.Time `json:"occurred_at"`
}

// ToStudyActivityEvent 解析 kafka 消息为学习活动事件
func ToStudyActivityEvent(msg *sarama.ConsumerMessage) (*StudyActivityEvent, error) {
	var event StudyActivityEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal study activity event")
	}
	if event.UserID == 0 {
		return nil, errors.New("study activity event missing user_id")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = msg.Timestamp
	}
	return &event, nil
}
