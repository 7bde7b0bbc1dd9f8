package kafka

import (
	"StudyHub/internal/api/config"
	"StudyHub/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	studyConsumer sarama.ConsumerGroup
	studyHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, metricRepo repository.StudyMetricRepo) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	studyConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaStudyConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		studyConsumer: studyConsumer,
		studyHandler:  NewStudyActivityHandler(metricRepo),
	}, nil
}

// Start 启动消费循环，阻塞到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaStudyConsumer.Topic
		log.Info("Study activity consumer started", "topic", topic)
		for {
			if err := m.studyConsumer.Consume(ctx, []string{topic}, m.studyHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.studyConsumer.Close(); err != nil {
		log.Error("Failed to close study consumer", "err", err)
	}
	return nil
}
