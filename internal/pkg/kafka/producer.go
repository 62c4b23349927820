package kafka

import (
	"Folio/internal/api/config"
	"Folio/internal/pkg/logger"
	"context"
	"fmt"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

type DocumentPublisher interface {
	PublishDocumentCreated(ctx context.Context, event *DocumentCreatedEvent) error
	Close() error
}

type saramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewDocumentPublisher kafka.enable 为 false 时返回空实现
func NewDocumentPublisher(cfg config.KafkaConfig) (DocumentPublisher, error) {
	if !cfg.Enable {
		log.Info("Kafka publisher disabled")
		return NewNoopPublisher(), nil
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka enabled but no brokers configured")
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("Kafka publisher ready", "brokers", cfg.Brokers, "topic", cfg.Producer.DocumentTopic)
	return NewSaramaPublisher(producer, cfg.Producer.DocumentTopic), nil
}

func NewSaramaPublisher(producer sarama.SyncProducer, topic string) DocumentPublisher {
	return &saramaPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (s *saramaPublisher) PublishDocumentCreated(ctx context.Context, event *DocumentCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.DocumentID, 10)),
		Value: sarama.ByteEncoder(payload),
	}
	if traceID := logger.TraceID(ctx); traceID != "" {
		msg.Headers = []sarama.RecordHeader{{Key: []byte(logger.TraceIDKey), Value: []byte(traceID)}}
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "document event published",
		"document_id", event.DocumentID, "partition", partition, "offset", offset)
	return nil
}

func (s *saramaPublisher) Close() error {
	return s.producer.Close()
}

type noopPublisher struct{}

func NewNoopPublisher() DocumentPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishDocumentCreated(context.Context, *DocumentCreatedEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
