package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/inkwell/adapters/event"
	"github.com/khoahotran/inkwell/adapters/persistence"
	"github.com/khoahotran/inkwell/internal/application/service"
	statsUC "github.com/khoahotran/inkwell/internal/application/usecase/stats"
	"github.com/khoahotran/inkwell/internal/config"
	"github.com/khoahotran/inkwell/pkg/logger"
)

func main() {
	fmt.Println("Starting Inkwell Stats Worker...")

	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatalf("FATAL: KAFKA_BROKERS must be set for the worker")
	}

	// Redis
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	usageStore := persistence.NewRedisUsageStore(redisClient)

	// Worker Use Case
	recordCompletionUC := statsUC.NewRecordCompletionUseCase(usageStore, appLogger)

	// Kafka Consumer
	completionConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicCompletionEvents,
		GroupID:  "completion-stats-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer completionConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicCompletionEvents)

	ctx := context.Background()
	for {
		// FetchMessage, not ReadMessage: with a consumer group, ReadMessage
		// commits the offset on read, so a failed event could never be
		// redelivered. The offset moves only via commitMessage below.
		msg, err := completionConsumer.FetchMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var ev service.CompletionEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(completionConsumer, msg)
			continue
		}

		err = recordCompletionUC.Execute(ctx, ev)
		if err != nil {
			log.Printf("ERROR: Failed to record usage for model %s: %v", ev.Model, err)
			continue
		}

		commitMessage(completionConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
