package broker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/infrastructure"
)

// StartKafkaConsumers runs one consumer per feed topic and blocks until ctx is done.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) {
	if len(brokers) == 0 {
		slog.Info("kafka consumers disabled, no brokers configured")
		return
	}
	var wg sync.WaitGroup
	for _, topic := range topics {
		wg.Add(1)
		go func(tp string) {
			defer wg.Done()
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
		}(topic)
	}
	wg.Wait()
}
