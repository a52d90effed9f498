package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Message is the wire format of an order event.
type Message struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

func MessageFromEntity(e entities.OrderEvent) Message {
	return Message{
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		UserID:     e.UserID.String(),
		Status:     string(e.Status),
		TotalPrice: e.TotalPrice.StringFixed(2),
		OccurredAt: e.OccurredAt,
	}
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer  Writer
	timeout time.Duration
}

func NewKafkaPublisher(cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.PublishTimeout,
		RequiredAcks: kafka.RequireOne,
	}, cfg.PublishTimeout)
}

func newKafkaPublisher(w Writer, timeout time.Duration) *kafkaPublisher {
	return &kafkaPublisher{writer: w, timeout: timeout}
}

// Publish writes the event keyed by order id, so events of one order keep their order.
// A write that does not finish within the publish timeout is abandoned.
func (p *kafkaPublisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	value, err := json.Marshal(MessageFromEntity(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
