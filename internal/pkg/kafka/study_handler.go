package kafka

import (
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/util"
	"StudyHub/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// StudyActivityHandler 把学习活动事件累加进按天指标表
type StudyActivityHandler struct {
	metricRepo repository.StudyMetricRepo
}

func NewStudyActivityHandler(metricRepo repository.StudyMetricRepo) *StudyActivityHandler {
	return &StudyActivityHandler{metricRepo: metricRepo}
}

func (s *StudyActivityHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("study activity consumer setup")
	return nil
}

func (s *StudyActivityHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("study activity consumer cleanup")
	return nil
}

func (s *StudyActivityHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic study-activity consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("process batch error", "err", err)
		return err
	}
	log.Info("topic study-activity consume claim end")
	return nil
}

// logic 单条事件落库：按 (user_id, 日期) 累加，天然幂等可重试
func (s *StudyActivityHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToStudyActivityEvent(msg)
	if err != nil {
		// 脏数据直接丢弃，重试也救不回来
		log.WarnContext(ctx, "drop malformed study activity event", "err", err)
		return nil
	}

	metric := &model.StudyDailyMetric{
		UserID:     event.UserID,
		MetricDate: util.Midnight(event.OccurredAt),
	}
	switch event.Type {
	case consts.ActivitySession:
		metric.StudySeconds = event.Amount
	case consts.ActivityMessage:
		metric.MessagesSent = int(event.Amount)
	case consts.ActivityChallenge:
		metric.Challenges = int(event.Amount)
	default:
		log.WarnContext(ctx, "unknown study activity type", "type", event.Type)
		return nil
	}

	return s.metricRepo.AccumulateDaily(ctx, metric)
}
