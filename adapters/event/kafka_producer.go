package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/config"
	"github.com/khoahotran/inkwell/pkg/logger"
)

const (
	TopicCompletionEvents = "completion.events"
)

type KafkaProducerClient struct {
	CompletionEventsWriter *kafka.Writer
	logger                 logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'completion.events'
	completionWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicCompletionEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		CompletionEventsWriter: completionWriter,
		logger:                 log,
	}, nil
}

func (c *KafkaProducerClient) PublishCompletion(ctx context.Context, ev service.CompletionEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal completion event: %w", err)
	}

	err = c.CompletionEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Kind),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to write completion event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.CompletionEventsWriter != nil {
		c.CompletionEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
