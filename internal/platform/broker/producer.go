package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
)

// KafkaProducer writes change messages to one feed topic, keyed by entity so that
// updates of one collection stay ordered.
type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer builds an async writer; Publish never waits for broker acknowledgement.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			Async:                  true,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					slog.Warn("kafka async write failed", slog.Int("messages", len(messages)), slog.Any("error", err))
				}
			},
		},
	}
}

func (p *KafkaProducer) Publish(ctx context.Context, msg *domain.Message) error {
	value, err := encodeMessage(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Entity),
		Value: value,
		Time:  msg.Timestamp,
	})
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

func encodeMessage(msg *domain.Message) ([]byte, error) {
	value, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.Topic, err)
	}
	return value, nil
}

var _ port.EventPublisher = (*KafkaProducer)(nil)
