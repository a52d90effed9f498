package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// Имитирует склад: читает события о новых заказах и двигает их по статусам.

const (
	broker      = "localhost:9092"
	eventsTopic = "order-events"
	statusTopic = "order-status"
)

type orderEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type statusEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

var flow = []string{"processing", "shipped", "delivered"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		GroupID: "fulfillment-simulator",
		Topic:   eventsTopic,
	})
	defer reader.Close()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    statusTopic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Println("reader stopped:", err)
			return
		}

		var event orderEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			log.Println("skip malformed event:", err)
			continue
		}
		if event.Type != "order.placed" {
			continue
		}

		go advance(ctx, writer, event.OrderID)
	}
}

func advance(ctx context.Context, w *kafka.Writer, orderID string) {
	// часть заказов застревает на случайном шаге
	steps := flow[:1+rand.Intn(len(flow))]
	for _, status := range steps {
		select {
		case <-time.After(time.Duration(1+rand.Intn(3)) * time.Second):
		case <-ctx.Done():
			return
		}

		data, _ := json.Marshal(statusEvent{OrderID: orderID, Status: status})
		if err := w.WriteMessages(ctx, kafka.Message{Key: []byte(orderID), Value: data}); err != nil {
			log.Println("failed to send status:", err)
			return
		}
		log.Println("order", orderID, "->", status)
	}
}
