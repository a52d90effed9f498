package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type StatusApplier interface {
	ApplyFulfillmentStatus(ctx context.Context, orderID uuid.UUID, status entities.Status) (entities.Order, error)
}

// StatusEvent сообщение от склада о смене статуса заказа
type StatusEvent struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	Status  string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	applier  StatusApplier
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, applier StatusApplier) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.StatusTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, applier)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, applier StatusApplier) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		applier:  applier,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		start := time.Now()
		if err := h.handleStatusEvent(ctx, m); err != nil {
			statusEventsFailed.Inc()
			h.logger.Error("failed to handle status event",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition))

			// Сообщение не коммитим, пока оно не попало в DLQ
			if err := h.WriteToDLQ(ctx, m, err); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			statusEventsDLQ.Inc()
		} else {
			statusEventsProcessed.Inc()
		}
		statusEventDuration.Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleStatusEvent(ctx context.Context, m kafka.Message) error {
	var event StatusEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal status event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid status event: %w", err)
	}

	order, err := h.applier.ApplyFulfillmentStatus(ctx, uuid.MustParse(event.OrderID), entities.Status(event.Status))
	if err != nil {
		return fmt.Errorf("failed to apply status %s to order %s: %w", event.Status, event.OrderID, err)
	}

	h.logger.Debug("status event applied",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic: fmt.Sprintf("%s-dlq", m.Topic),
		Key:   m.Key,
		Value: m.Value,
		Headers: append(m.Headers,
			kafka.Header{Key: "dlq_error", Value: []byte(cause.Error())},
		),
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
