package notifications

import (
	"context"
	"fmt"
	"time"

	"baerstudio/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher is the contract for emitting customer notifications.
type Publisher interface {
	Publish(ctx context.Context, notification *Notification) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka publisher.
type ProducerConfig struct {
	Brokers  []string
	Topic    string
	RetryMax int
	Timeout  time.Duration
}

// DefaultProducerConfig returns a default producer configuration.
func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:  brokers,
		Topic:    topic,
		RetryMax: 3,
		Timeout:  10 * time.Second,
	}
}

// KafkaPublisher publishes notifications to a Kafka topic.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher creates a Kafka-backed publisher.
func NewKafkaPublisher(cfg *ProducerConfig) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = cfg.Timeout
	// Hash partitioner keeps one recipient's notifications in order.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaPublisher{producer: producer, topic: cfg.Topic}, nil
}

// NewKafkaPublisherWithProducer wraps an existing producer, used by
// tests with a mock producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// Publish sends one notification to the topic.
func (p *KafkaPublisher) Publish(ctx context.Context, notification *Notification) error {
	payload, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(notification.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: notification.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
			{Key: []byte("notification_type"), Value: []byte(notification.Type)},
			{Key: []byte("recipient_email"), Value: []byte(notification.RecipientEmail)},
		},
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher is the fallback used when no broker is configured: it
// records the notification in the service log and drops it. This keeps
// single-node deployments working without Kafka.
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher creates the log-only fallback publisher.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, notification *Notification) error {
	p.log.InfoContext(ctx, "Notification (log-only delivery)",
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
		"booking_id", notification.BookingID,
		"contact_id", notification.ContactID,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
